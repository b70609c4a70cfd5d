package bemu

// Datatype reports the kind of value an element holds.
type Datatype int

const (
	DatatypeNull     Datatype = iota // No value (null scalar, empty array).
	DatatypeBool                     // bool
	DatatypeInt32                    // int32
	DatatypeInt64                    // int64
	DatatypeFloat32                  // float32
	DatatypeFloat64                  // float64
	DatatypeString                   // string
	DatatypeDatetime                 // time.Time
	DatatypeSequence                 // Complex element with named children.
)

var datatypeNames = [...]string{
	DatatypeNull:     "NULL",
	DatatypeBool:     "BOOL",
	DatatypeInt32:    "INT32",
	DatatypeInt64:    "INT64",
	DatatypeFloat32:  "FLOAT32",
	DatatypeFloat64:  "FLOAT64",
	DatatypeString:   "STRING",
	DatatypeDatetime: "DATETIME",
	DatatypeSequence: "SEQUENCE",
}

func (d Datatype) String() string {
	if d < 0 || int(d) >= len(datatypeNames) {
		return "UNKNOWN"
	}
	return datatypeNames[d]
}

// IsNumeric reports whether d is one of the integer or floating point kinds.
func (d Datatype) IsNumeric() bool {
	switch d {
	case DatatypeInt32, DatatypeInt64, DatatypeFloat32, DatatypeFloat64:
		return true
	}
	return false
}
