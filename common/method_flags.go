package common

// MethodFlags describe a bound method.
type MethodFlags int64

const (
	MethodFlagNormal          MethodFlags = 1 << 0
	MethodFlagEditor          MethodFlags = 1 << 1
	MethodFlagConst           MethodFlags = 1 << 2
	MethodFlagVirtual         MethodFlags = 1 << 3
	MethodFlagVararg          MethodFlags = 1 << 4
	MethodFlagStatic          MethodFlags = 1 << 5
	MethodFlagObjectCore      MethodFlags = 1 << 6 // internal; hidden from the documentation
	MethodFlagVirtualRequired MethodFlags = 1 << 7

	MethodFlagDefault MethodFlags = MethodFlagNormal
)

var MethodFlagsEnum = MustEnum("MethodFlags", []Member[MethodFlags]{
	{Name: "Normal", EngineName: "METHOD_FLAG_NORMAL", Value: MethodFlagNormal},
	{Name: "Editor", EngineName: "METHOD_FLAG_EDITOR", Value: MethodFlagEditor},
	{Name: "Const", EngineName: "METHOD_FLAG_CONST", Value: MethodFlagConst},
	{Name: "Virtual", EngineName: "METHOD_FLAG_VIRTUAL", Value: MethodFlagVirtual},
	{Name: "Vararg", EngineName: "METHOD_FLAG_VARARG", Value: MethodFlagVararg},
	{Name: "Static", EngineName: "METHOD_FLAG_STATIC", Value: MethodFlagStatic},
	{Name: "ObjectCore", EngineName: "METHOD_FLAG_OBJECT_CORE", Value: MethodFlagObjectCore},
	{Name: "VirtualRequired", EngineName: "METHOD_FLAG_VIRTUAL_REQUIRED", Value: MethodFlagVirtualRequired},
	{Name: "Default", EngineName: "METHOD_FLAGS_DEFAULT", Value: MethodFlagDefault, Alias: true},
}, AsFlags())

func (f MethodFlags) String() string { return MethodFlagsEnum.Format(f) }
