// Package bemu provides typed element trees for an emulated market, reference
// and historical data API:
//
// - One capability interface (Element) over a closed set of variants
// - Scalars (Int32/Int64/Float32/Float64/String/Bool/Datetime/Null/Object)
// - Collections (Complex sequences of named children and Arrays of items)
// - A recursive, indentation-aware printer shared by every variant
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep the element API in the root package; synthesized response pieces live
// under market/ and refdata/, wire formats under codec/, the CLI under cmd/bemu.
// - Elements are immutable after construction except *Object.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sd := bemu.Sequence("securityData").
//		AddString("security", "IBM US Equity").
//		Add(refdata.NewFieldExceptionsArray([]string{"ZBID"})).
//		MustBuild()
//
//	if sd.HasElement("fieldExceptions", true) {
//		fe, _ := sd.Element("fieldExceptions")
//		for i := 0; i < fe.NumValues(); i++ {
//			item, _ := fe.ValueAsElement(i)
//			id, _ := item.ElementAsString("fieldId")
//			_ = id
//		}
//	}
//	_ = sd.Print(os.Stdout, 0, 4)
package bemu
