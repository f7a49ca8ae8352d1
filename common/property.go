package common

// PropertyHint tells the editor how to present a property. The hint string that accompanies
// it is interpreted per hint; the comments show its shape where it has one.
type PropertyHint int64

const (
	PropertyHintNone                 PropertyHint = 0 // no hint
	PropertyHintRange                PropertyHint = 1 // "min,max[,step][,or_greater][,or_less]"
	PropertyHintEnumeration          PropertyHint = 2 // "Name1,Name2:5,Name3"
	PropertyHintEnumSuggestion       PropertyHint = 3
	PropertyHintExpEasing            PropertyHint = 4
	PropertyHintLink                 PropertyHint = 5
	PropertyHintFlags                PropertyHint = 6 // "Bit0,Bit1,Bit2"
	PropertyHintLayers2DRender       PropertyHint = 7
	PropertyHintLayers2DPhysics      PropertyHint = 8
	PropertyHintLayers2DNavigation   PropertyHint = 9
	PropertyHintLayers3DRender       PropertyHint = 10
	PropertyHintLayers3DPhysics      PropertyHint = 11
	PropertyHintLayers3DNavigation   PropertyHint = 12
	PropertyHintLayersAvoidance      PropertyHint = 37
	PropertyHintFile                 PropertyHint = 13 // "*.png,*.wav"
	PropertyHintDir                  PropertyHint = 14
	PropertyHintGlobalFile           PropertyHint = 15
	PropertyHintGlobalDir            PropertyHint = 16
	PropertyHintResourceType         PropertyHint = 17
	PropertyHintMultilineText        PropertyHint = 18
	PropertyHintExpression           PropertyHint = 19
	PropertyHintPlaceholderText      PropertyHint = 20
	PropertyHintColorNoAlpha         PropertyHint = 21
	PropertyHintObjectID             PropertyHint = 22
	PropertyHintTypeString           PropertyHint = 23
	PropertyHintNodePathToEditedNode PropertyHint = 24
	PropertyHintObjectTooBig         PropertyHint = 25
	PropertyHintNodePathValidTypes   PropertyHint = 26
	PropertyHintSaveFile             PropertyHint = 27
	PropertyHintGlobalSaveFile       PropertyHint = 28
	PropertyHintIntIsObjectID        PropertyHint = 29
	PropertyHintIntIsPointer         PropertyHint = 30
	PropertyHintArrayType            PropertyHint = 31
	PropertyHintDictionaryType       PropertyHint = 38
	PropertyHintLocaleID             PropertyHint = 32
	PropertyHintLocalizableString    PropertyHint = 33
	PropertyHintNodeType             PropertyHint = 34
	PropertyHintHideQuaternionEdit   PropertyHint = 35
	PropertyHintPassword             PropertyHint = 36
	PropertyHintToolButton           PropertyHint = 39
	PropertyHintOneshot              PropertyHint = 40

	PropertyHintMax PropertyHint = 41
)

var PropertyHintEnum = MustEnum("PropertyHint", []Member[PropertyHint]{
	{Name: "None", EngineName: "PROPERTY_HINT_NONE", Value: PropertyHintNone},
	{Name: "Range", EngineName: "PROPERTY_HINT_RANGE", Value: PropertyHintRange},
	{Name: "Enum", EngineName: "PROPERTY_HINT_ENUM", Value: PropertyHintEnumeration},
	{Name: "EnumSuggestion", EngineName: "PROPERTY_HINT_ENUM_SUGGESTION", Value: PropertyHintEnumSuggestion},
	{Name: "ExpEasing", EngineName: "PROPERTY_HINT_EXP_EASING", Value: PropertyHintExpEasing},
	{Name: "Link", EngineName: "PROPERTY_HINT_LINK", Value: PropertyHintLink},
	{Name: "Flags", EngineName: "PROPERTY_HINT_FLAGS", Value: PropertyHintFlags},
	{Name: "Layers2DRender", EngineName: "PROPERTY_HINT_LAYERS_2D_RENDER", Value: PropertyHintLayers2DRender},
	{Name: "Layers2DPhysics", EngineName: "PROPERTY_HINT_LAYERS_2D_PHYSICS", Value: PropertyHintLayers2DPhysics},
	{Name: "Layers2DNavigation", EngineName: "PROPERTY_HINT_LAYERS_2D_NAVIGATION", Value: PropertyHintLayers2DNavigation},
	{Name: "Layers3DRender", EngineName: "PROPERTY_HINT_LAYERS_3D_RENDER", Value: PropertyHintLayers3DRender},
	{Name: "Layers3DPhysics", EngineName: "PROPERTY_HINT_LAYERS_3D_PHYSICS", Value: PropertyHintLayers3DPhysics},
	{Name: "Layers3DNavigation", EngineName: "PROPERTY_HINT_LAYERS_3D_NAVIGATION", Value: PropertyHintLayers3DNavigation},
	{Name: "LayersAvoidance", EngineName: "PROPERTY_HINT_LAYERS_AVOIDANCE", Value: PropertyHintLayersAvoidance},
	{Name: "File", EngineName: "PROPERTY_HINT_FILE", Value: PropertyHintFile},
	{Name: "Dir", EngineName: "PROPERTY_HINT_DIR", Value: PropertyHintDir},
	{Name: "GlobalFile", EngineName: "PROPERTY_HINT_GLOBAL_FILE", Value: PropertyHintGlobalFile},
	{Name: "GlobalDir", EngineName: "PROPERTY_HINT_GLOBAL_DIR", Value: PropertyHintGlobalDir},
	{Name: "ResourceType", EngineName: "PROPERTY_HINT_RESOURCE_TYPE", Value: PropertyHintResourceType},
	{Name: "MultilineText", EngineName: "PROPERTY_HINT_MULTILINE_TEXT", Value: PropertyHintMultilineText},
	{Name: "Expression", EngineName: "PROPERTY_HINT_EXPRESSION", Value: PropertyHintExpression},
	{Name: "PlaceholderText", EngineName: "PROPERTY_HINT_PLACEHOLDER_TEXT", Value: PropertyHintPlaceholderText},
	{Name: "ColorNoAlpha", EngineName: "PROPERTY_HINT_COLOR_NO_ALPHA", Value: PropertyHintColorNoAlpha},
	{Name: "ObjectID", EngineName: "PROPERTY_HINT_OBJECT_ID", Value: PropertyHintObjectID},
	{Name: "TypeString", EngineName: "PROPERTY_HINT_TYPE_STRING", Value: PropertyHintTypeString},
	{Name: "NodePathToEditedNode", EngineName: "PROPERTY_HINT_NODE_PATH_TO_EDITED_NODE", Value: PropertyHintNodePathToEditedNode},
	{Name: "ObjectTooBig", EngineName: "PROPERTY_HINT_OBJECT_TOO_BIG", Value: PropertyHintObjectTooBig},
	{Name: "NodePathValidTypes", EngineName: "PROPERTY_HINT_NODE_PATH_VALID_TYPES", Value: PropertyHintNodePathValidTypes},
	{Name: "SaveFile", EngineName: "PROPERTY_HINT_SAVE_FILE", Value: PropertyHintSaveFile},
	{Name: "GlobalSaveFile", EngineName: "PROPERTY_HINT_GLOBAL_SAVE_FILE", Value: PropertyHintGlobalSaveFile},
	{Name: "IntIsObjectID", EngineName: "PROPERTY_HINT_INT_IS_OBJECTID", Value: PropertyHintIntIsObjectID},
	{Name: "IntIsPointer", EngineName: "PROPERTY_HINT_INT_IS_POINTER", Value: PropertyHintIntIsPointer},
	{Name: "ArrayType", EngineName: "PROPERTY_HINT_ARRAY_TYPE", Value: PropertyHintArrayType},
	{Name: "DictionaryType", EngineName: "PROPERTY_HINT_DICTIONARY_TYPE", Value: PropertyHintDictionaryType},
	{Name: "LocaleID", EngineName: "PROPERTY_HINT_LOCALE_ID", Value: PropertyHintLocaleID},
	{Name: "LocalizableString", EngineName: "PROPERTY_HINT_LOCALIZABLE_STRING", Value: PropertyHintLocalizableString},
	{Name: "NodeType", EngineName: "PROPERTY_HINT_NODE_TYPE", Value: PropertyHintNodeType},
	{Name: "HideQuaternionEdit", EngineName: "PROPERTY_HINT_HIDE_QUATERNION_EDIT", Value: PropertyHintHideQuaternionEdit},
	{Name: "Password", EngineName: "PROPERTY_HINT_PASSWORD", Value: PropertyHintPassword},
	{Name: "ToolButton", EngineName: "PROPERTY_HINT_TOOL_BUTTON", Value: PropertyHintToolButton},
	{Name: "Oneshot", EngineName: "PROPERTY_HINT_ONESHOT", Value: PropertyHintOneshot},
	{Name: "Max", EngineName: "PROPERTY_HINT_MAX", Value: PropertyHintMax, Sentinel: true},
})

// PropertyUsageFlags describe how a property is stored and shown. Combine with |.
type PropertyUsageFlags int64

const (
	PropertyUsageNone                    PropertyUsageFlags = 0
	PropertyUsageStorage                 PropertyUsageFlags = 1 << 1
	PropertyUsageEditor                  PropertyUsageFlags = 1 << 2
	PropertyUsageInternal                PropertyUsageFlags = 1 << 3
	PropertyUsageCheckable               PropertyUsageFlags = 1 << 4
	PropertyUsageChecked                 PropertyUsageFlags = 1 << 5
	PropertyUsageGroup                   PropertyUsageFlags = 1 << 6
	PropertyUsageCategory                PropertyUsageFlags = 1 << 7
	PropertyUsageSubgroup                PropertyUsageFlags = 1 << 8
	PropertyUsageClassIsBitfield         PropertyUsageFlags = 1 << 9
	PropertyUsageNoInstanceState         PropertyUsageFlags = 1 << 10
	PropertyUsageRestartIfChanged        PropertyUsageFlags = 1 << 11
	PropertyUsageScriptVariable          PropertyUsageFlags = 1 << 12
	PropertyUsageStoreIfNull             PropertyUsageFlags = 1 << 13
	PropertyUsageUpdateAllIfModified     PropertyUsageFlags = 1 << 14
	PropertyUsageScriptDefaultValue      PropertyUsageFlags = 1 << 15 // deprecated, unused by the engine
	PropertyUsageClassIsEnum             PropertyUsageFlags = 1 << 16
	PropertyUsageNilIsVariant            PropertyUsageFlags = 1 << 17
	PropertyUsageArray                   PropertyUsageFlags = 1 << 18
	PropertyUsageAlwaysDuplicate         PropertyUsageFlags = 1 << 19
	PropertyUsageNeverDuplicate          PropertyUsageFlags = 1 << 20
	PropertyUsageHighEndGfx              PropertyUsageFlags = 1 << 21
	PropertyUsageNodePathFromSceneRoot   PropertyUsageFlags = 1 << 22
	PropertyUsageResourceNotPersistent   PropertyUsageFlags = 1 << 23
	PropertyUsageKeyingIncrements        PropertyUsageFlags = 1 << 24
	PropertyUsageDeferredSetResource     PropertyUsageFlags = 1 << 25 // deprecated, unused by the engine
	PropertyUsageEditorInstantiateObject PropertyUsageFlags = 1 << 26
	PropertyUsageEditorBasicSetting      PropertyUsageFlags = 1 << 27
	PropertyUsageReadOnly                PropertyUsageFlags = 1 << 28
	PropertyUsageSecret                  PropertyUsageFlags = 1 << 29

	PropertyUsageDefault  PropertyUsageFlags = PropertyUsageStorage | PropertyUsageEditor // stored and shown in the inspector
	PropertyUsageNoEditor PropertyUsageFlags = PropertyUsageStorage // stored but hidden
)

var PropertyUsageFlagsEnum = MustEnum("PropertyUsageFlags", []Member[PropertyUsageFlags]{
	{Name: "None", EngineName: "PROPERTY_USAGE_NONE", Value: PropertyUsageNone},
	{Name: "Storage", EngineName: "PROPERTY_USAGE_STORAGE", Value: PropertyUsageStorage},
	{Name: "Editor", EngineName: "PROPERTY_USAGE_EDITOR", Value: PropertyUsageEditor},
	{Name: "Internal", EngineName: "PROPERTY_USAGE_INTERNAL", Value: PropertyUsageInternal},
	{Name: "Checkable", EngineName: "PROPERTY_USAGE_CHECKABLE", Value: PropertyUsageCheckable},
	{Name: "Checked", EngineName: "PROPERTY_USAGE_CHECKED", Value: PropertyUsageChecked},
	{Name: "Group", EngineName: "PROPERTY_USAGE_GROUP", Value: PropertyUsageGroup},
	{Name: "Category", EngineName: "PROPERTY_USAGE_CATEGORY", Value: PropertyUsageCategory},
	{Name: "Subgroup", EngineName: "PROPERTY_USAGE_SUBGROUP", Value: PropertyUsageSubgroup},
	{Name: "ClassIsBitfield", EngineName: "PROPERTY_USAGE_CLASS_IS_BITFIELD", Value: PropertyUsageClassIsBitfield},
	{Name: "NoInstanceState", EngineName: "PROPERTY_USAGE_NO_INSTANCE_STATE", Value: PropertyUsageNoInstanceState},
	{Name: "RestartIfChanged", EngineName: "PROPERTY_USAGE_RESTART_IF_CHANGED", Value: PropertyUsageRestartIfChanged},
	{Name: "ScriptVariable", EngineName: "PROPERTY_USAGE_SCRIPT_VARIABLE", Value: PropertyUsageScriptVariable},
	{Name: "StoreIfNull", EngineName: "PROPERTY_USAGE_STORE_IF_NULL", Value: PropertyUsageStoreIfNull},
	{Name: "UpdateAllIfModified", EngineName: "PROPERTY_USAGE_UPDATE_ALL_IF_MODIFIED", Value: PropertyUsageUpdateAllIfModified},
	{Name: "ScriptDefaultValue", EngineName: "PROPERTY_USAGE_SCRIPT_DEFAULT_VALUE", Value: PropertyUsageScriptDefaultValue},
	{Name: "ClassIsEnum", EngineName: "PROPERTY_USAGE_CLASS_IS_ENUM", Value: PropertyUsageClassIsEnum},
	{Name: "NilIsVariant", EngineName: "PROPERTY_USAGE_NIL_IS_VARIANT", Value: PropertyUsageNilIsVariant},
	{Name: "Array", EngineName: "PROPERTY_USAGE_ARRAY", Value: PropertyUsageArray},
	{Name: "AlwaysDuplicate", EngineName: "PROPERTY_USAGE_ALWAYS_DUPLICATE", Value: PropertyUsageAlwaysDuplicate},
	{Name: "NeverDuplicate", EngineName: "PROPERTY_USAGE_NEVER_DUPLICATE", Value: PropertyUsageNeverDuplicate},
	{Name: "HighEndGfx", EngineName: "PROPERTY_USAGE_HIGH_END_GFX", Value: PropertyUsageHighEndGfx},
	{Name: "NodePathFromSceneRoot", EngineName: "PROPERTY_USAGE_NODE_PATH_FROM_SCENE_ROOT", Value: PropertyUsageNodePathFromSceneRoot},
	{Name: "ResourceNotPersistent", EngineName: "PROPERTY_USAGE_RESOURCE_NOT_PERSISTENT", Value: PropertyUsageResourceNotPersistent},
	{Name: "KeyingIncrements", EngineName: "PROPERTY_USAGE_KEYING_INCREMENTS", Value: PropertyUsageKeyingIncrements},
	{Name: "DeferredSetResource", EngineName: "PROPERTY_USAGE_DEFERRED_SET_RESOURCE", Value: PropertyUsageDeferredSetResource},
	{Name: "EditorInstantiateObject", EngineName: "PROPERTY_USAGE_EDITOR_INSTANTIATE_OBJECT", Value: PropertyUsageEditorInstantiateObject},
	{Name: "EditorBasicSetting", EngineName: "PROPERTY_USAGE_EDITOR_BASIC_SETTING", Value: PropertyUsageEditorBasicSetting},
	{Name: "ReadOnly", EngineName: "PROPERTY_USAGE_READ_ONLY", Value: PropertyUsageReadOnly},
	{Name: "Secret", EngineName: "PROPERTY_USAGE_SECRET", Value: PropertyUsageSecret},
	{Name: "Default", EngineName: "PROPERTY_USAGE_DEFAULT", Value: PropertyUsageDefault, Composite: true},
	{Name: "NoEditor", EngineName: "PROPERTY_USAGE_NO_EDITOR", Value: PropertyUsageNoEditor, Alias: true},
}, AsFlags())

func (h PropertyHint) String() string       { return PropertyHintEnum.NameOf(h) }
func (f PropertyUsageFlags) String() string { return PropertyUsageFlagsEnum.Format(f) }
