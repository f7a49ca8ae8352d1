package registry

import "github.com/Carmen-Shannon/oxy-constants/common"

// RegistryBuilderOption is a functional option for configuring a constantRegistry.
// Use the With* functions to create options.
type RegistryBuilderOption func(r *constantRegistry)

// WithCategory registers a single category.
//
// Parameters:
//   - c: the category to register
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithCategory(c common.Category) RegistryBuilderOption {
	return func(r *constantRegistry) {
		r.pending = append(r.pending, c)
	}
}

// WithCategories registers several categories in the given order.
//
// Parameters:
//   - cs: the categories to register
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithCategories(cs ...common.Category) RegistryBuilderOption {
	return func(r *constantRegistry) {
		r.pending = append(r.pending, cs...)
	}
}

// WithEngineCategories registers every engine category declared in package common.
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithEngineCategories() RegistryBuilderOption {
	return WithCategories(EngineCategories()...)
}

// EngineCategories returns the engine categories in their canonical order.
//
// Returns:
//   - []common.Category: a fresh slice of the categories
func EngineCategories() []common.Category {
	return []common.Category{
		common.SideEnum,
		common.CornerEnum,
		common.OrientationEnum,
		common.ClockDirectionEnum,
		common.HorizontalAlignmentEnum,
		common.VerticalAlignmentEnum,
		common.InlineAlignmentEnum,
		common.EulerOrderEnum,
		common.KeyEnum,
		common.KeyModifierMaskEnum,
		common.KeyLocationEnum,
		common.MouseButtonEnum,
		common.MouseButtonMaskEnum,
		common.JoyButtonEnum,
		common.JoyAxisEnum,
		common.MIDIMessageEnum,
		common.ErrorEnum,
		common.PropertyHintEnum,
		common.PropertyUsageFlagsEnum,
		common.MethodFlagsEnum,
		common.VariantTypeEnum,
		common.VariantOperatorEnum,
	}
}
