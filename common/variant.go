package common

// VariantType tags the type held by an engine Variant.
type VariantType int64

const (
	VariantTypeNil                VariantType = 0
	VariantTypeBool               VariantType = 1
	VariantTypeInt                VariantType = 2
	VariantTypeFloat              VariantType = 3
	VariantTypeString             VariantType = 4
	VariantTypeVector2            VariantType = 5
	VariantTypeVector2i           VariantType = 6
	VariantTypeRect2              VariantType = 7
	VariantTypeRect2i             VariantType = 8
	VariantTypeVector3            VariantType = 9
	VariantTypeVector3i           VariantType = 10
	VariantTypeTransform2D        VariantType = 11
	VariantTypeVector4            VariantType = 12
	VariantTypeVector4i           VariantType = 13
	VariantTypePlane              VariantType = 14
	VariantTypeQuaternion         VariantType = 15
	VariantTypeAABB               VariantType = 16
	VariantTypeBasis              VariantType = 17
	VariantTypeTransform3D        VariantType = 18
	VariantTypeProjection         VariantType = 19
	VariantTypeColor              VariantType = 20
	VariantTypeStringName         VariantType = 21
	VariantTypeNodePath           VariantType = 22
	VariantTypeRID                VariantType = 23
	VariantTypeObject             VariantType = 24
	VariantTypeCallable           VariantType = 25
	VariantTypeSignal             VariantType = 26
	VariantTypeDictionary         VariantType = 27
	VariantTypeArray              VariantType = 28
	VariantTypePackedByteArray    VariantType = 29
	VariantTypePackedInt32Array   VariantType = 30
	VariantTypePackedInt64Array   VariantType = 31
	VariantTypePackedFloat32Array VariantType = 32
	VariantTypePackedFloat64Array VariantType = 33
	VariantTypePackedStringArray  VariantType = 34
	VariantTypePackedVector2Array VariantType = 35
	VariantTypePackedVector3Array VariantType = 36
	VariantTypePackedColorArray   VariantType = 37
	VariantTypePackedVector4Array VariantType = 38

	VariantTypeMax VariantType = 39
)

var VariantTypeEnum = MustEnum("Variant.Type", []Member[VariantType]{
	{Name: "Nil", EngineName: "TYPE_NIL", Value: VariantTypeNil},
	{Name: "Bool", EngineName: "TYPE_BOOL", Value: VariantTypeBool},
	{Name: "Int", EngineName: "TYPE_INT", Value: VariantTypeInt},
	{Name: "Float", EngineName: "TYPE_FLOAT", Value: VariantTypeFloat},
	{Name: "String", EngineName: "TYPE_STRING", Value: VariantTypeString},
	{Name: "Vector2", EngineName: "TYPE_VECTOR2", Value: VariantTypeVector2},
	{Name: "Vector2i", EngineName: "TYPE_VECTOR2I", Value: VariantTypeVector2i},
	{Name: "Rect2", EngineName: "TYPE_RECT2", Value: VariantTypeRect2},
	{Name: "Rect2i", EngineName: "TYPE_RECT2I", Value: VariantTypeRect2i},
	{Name: "Vector3", EngineName: "TYPE_VECTOR3", Value: VariantTypeVector3},
	{Name: "Vector3i", EngineName: "TYPE_VECTOR3I", Value: VariantTypeVector3i},
	{Name: "Transform2D", EngineName: "TYPE_TRANSFORM2D", Value: VariantTypeTransform2D},
	{Name: "Vector4", EngineName: "TYPE_VECTOR4", Value: VariantTypeVector4},
	{Name: "Vector4i", EngineName: "TYPE_VECTOR4I", Value: VariantTypeVector4i},
	{Name: "Plane", EngineName: "TYPE_PLANE", Value: VariantTypePlane},
	{Name: "Quaternion", EngineName: "TYPE_QUATERNION", Value: VariantTypeQuaternion},
	{Name: "AABB", EngineName: "TYPE_AABB", Value: VariantTypeAABB},
	{Name: "Basis", EngineName: "TYPE_BASIS", Value: VariantTypeBasis},
	{Name: "Transform3D", EngineName: "TYPE_TRANSFORM3D", Value: VariantTypeTransform3D},
	{Name: "Projection", EngineName: "TYPE_PROJECTION", Value: VariantTypeProjection},
	{Name: "Color", EngineName: "TYPE_COLOR", Value: VariantTypeColor},
	{Name: "StringName", EngineName: "TYPE_STRING_NAME", Value: VariantTypeStringName},
	{Name: "NodePath", EngineName: "TYPE_NODE_PATH", Value: VariantTypeNodePath},
	{Name: "RID", EngineName: "TYPE_RID", Value: VariantTypeRID},
	{Name: "Object", EngineName: "TYPE_OBJECT", Value: VariantTypeObject},
	{Name: "Callable", EngineName: "TYPE_CALLABLE", Value: VariantTypeCallable},
	{Name: "Signal", EngineName: "TYPE_SIGNAL", Value: VariantTypeSignal},
	{Name: "Dictionary", EngineName: "TYPE_DICTIONARY", Value: VariantTypeDictionary},
	{Name: "Array", EngineName: "TYPE_ARRAY", Value: VariantTypeArray},
	{Name: "PackedByteArray", EngineName: "TYPE_PACKED_BYTE_ARRAY", Value: VariantTypePackedByteArray},
	{Name: "PackedInt32Array", EngineName: "TYPE_PACKED_INT32_ARRAY", Value: VariantTypePackedInt32Array},
	{Name: "PackedInt64Array", EngineName: "TYPE_PACKED_INT64_ARRAY", Value: VariantTypePackedInt64Array},
	{Name: "PackedFloat32Array", EngineName: "TYPE_PACKED_FLOAT32_ARRAY", Value: VariantTypePackedFloat32Array},
	{Name: "PackedFloat64Array", EngineName: "TYPE_PACKED_FLOAT64_ARRAY", Value: VariantTypePackedFloat64Array},
	{Name: "PackedStringArray", EngineName: "TYPE_PACKED_STRING_ARRAY", Value: VariantTypePackedStringArray},
	{Name: "PackedVector2Array", EngineName: "TYPE_PACKED_VECTOR2_ARRAY", Value: VariantTypePackedVector2Array},
	{Name: "PackedVector3Array", EngineName: "TYPE_PACKED_VECTOR3_ARRAY", Value: VariantTypePackedVector3Array},
	{Name: "PackedColorArray", EngineName: "TYPE_PACKED_COLOR_ARRAY", Value: VariantTypePackedColorArray},
	{Name: "PackedVector4Array", EngineName: "TYPE_PACKED_VECTOR4_ARRAY", Value: VariantTypePackedVector4Array},
	{Name: "Max", EngineName: "TYPE_MAX", Value: VariantTypeMax, Sentinel: true},
})

// VariantOperator identifies an operator that can be evaluated between Variants.
type VariantOperator int64

const (
	OpEqual        VariantOperator = 0 // ==
	OpNotEqual     VariantOperator = 1 // !=
	OpLess         VariantOperator = 2 // <
	OpLessEqual    VariantOperator = 3 // <=
	OpGreater      VariantOperator = 4 // >
	OpGreaterEqual VariantOperator = 5 // >=
	OpAdd          VariantOperator = 6 // +
	OpSubtract     VariantOperator = 7 // -
	OpMultiply     VariantOperator = 8 // *
	OpDivide       VariantOperator = 9 // /
	OpNegate       VariantOperator = 10 // unary -
	OpPositive     VariantOperator = 11 // unary +
	OpModule       VariantOperator = 12 // %
	OpPower        VariantOperator = 13 // **
	OpShiftLeft    VariantOperator = 14 // <<
	OpShiftRight   VariantOperator = 15 // >>
	OpBitAnd       VariantOperator = 16 // &
	OpBitOr        VariantOperator = 17 // |
	OpBitXor       VariantOperator = 18 // ^
	OpBitNegate    VariantOperator = 19 // ~
	OpAnd          VariantOperator = 20 // and
	OpOr           VariantOperator = 21 // or
	OpXor          VariantOperator = 22 // xor
	OpNot          VariantOperator = 23 // not
	OpIn           VariantOperator = 24 // in

	OpMax VariantOperator = 25
)

var VariantOperatorEnum = MustEnum("Variant.Operator", []Member[VariantOperator]{
	{Name: "Equal", EngineName: "OP_EQUAL", Value: OpEqual},
	{Name: "NotEqual", EngineName: "OP_NOT_EQUAL", Value: OpNotEqual},
	{Name: "Less", EngineName: "OP_LESS", Value: OpLess},
	{Name: "LessEqual", EngineName: "OP_LESS_EQUAL", Value: OpLessEqual},
	{Name: "Greater", EngineName: "OP_GREATER", Value: OpGreater},
	{Name: "GreaterEqual", EngineName: "OP_GREATER_EQUAL", Value: OpGreaterEqual},
	{Name: "Add", EngineName: "OP_ADD", Value: OpAdd},
	{Name: "Subtract", EngineName: "OP_SUBTRACT", Value: OpSubtract},
	{Name: "Multiply", EngineName: "OP_MULTIPLY", Value: OpMultiply},
	{Name: "Divide", EngineName: "OP_DIVIDE", Value: OpDivide},
	{Name: "Negate", EngineName: "OP_NEGATE", Value: OpNegate},
	{Name: "Positive", EngineName: "OP_POSITIVE", Value: OpPositive},
	{Name: "Module", EngineName: "OP_MODULE", Value: OpModule},
	{Name: "Power", EngineName: "OP_POWER", Value: OpPower},
	{Name: "ShiftLeft", EngineName: "OP_SHIFT_LEFT", Value: OpShiftLeft},
	{Name: "ShiftRight", EngineName: "OP_SHIFT_RIGHT", Value: OpShiftRight},
	{Name: "BitAnd", EngineName: "OP_BIT_AND", Value: OpBitAnd},
	{Name: "BitOr", EngineName: "OP_BIT_OR", Value: OpBitOr},
	{Name: "BitXor", EngineName: "OP_BIT_XOR", Value: OpBitXor},
	{Name: "BitNegate", EngineName: "OP_BIT_NEGATE", Value: OpBitNegate},
	{Name: "And", EngineName: "OP_AND", Value: OpAnd},
	{Name: "Or", EngineName: "OP_OR", Value: OpOr},
	{Name: "Xor", EngineName: "OP_XOR", Value: OpXor},
	{Name: "Not", EngineName: "OP_NOT", Value: OpNot},
	{Name: "In", EngineName: "OP_IN", Value: OpIn},
	{Name: "Max", EngineName: "OP_MAX", Value: OpMax, Sentinel: true},
})

func (t VariantType) String() string     { return VariantTypeEnum.NameOf(t) }
func (o VariantOperator) String() string { return VariantOperatorEnum.NameOf(o) }

// IsPackedArray reports whether the type is one of the packed array types.
func (t VariantType) IsPackedArray() bool {
	return t >= VariantTypePackedByteArray && t < VariantTypeMax
}

// IsUnary reports whether the operator takes a single operand.
func (o VariantOperator) IsUnary() bool {
	switch o {
	case OpNegate, OpPositive, OpBitNegate, OpNot:
		return true
	}
	return false
}
