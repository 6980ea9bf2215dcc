package widget

// Factory creates a new instance of a registered widget.
type Factory func() Element

// widgetRegistry stores registered widget factories.
var widgetRegistry = make(map[string]Factory)

// Widget registry names for the builtin widgets. Custom widgets should
// use the "widget_" prefix to avoid naming conflicts.
const (
	WidgetGrid = "widget_grid"
)

// RegisterWidget registers a widget factory under the given name.
//
// Example:
//
//	widget.RegisterWidget("widget_color_wheel", func() widget.Element {
//	    return &ColorWheel{}
//	})
func RegisterWidget(name string, factory Factory) {
	widgetRegistry[name] = factory
}

// GetWidget retrieves a widget factory by name.
// Returns nil if the widget is not registered.
func GetWidget(name string) Factory {
	return widgetRegistry[name]
}

// UnregisterWidget removes a widget from the registry.
func UnregisterWidget(name string) {
	delete(widgetRegistry, name)
}

// ListWidgets returns the names of all registered widgets.
func ListWidgets() []string {
	names := make([]string, 0, len(widgetRegistry))
	for name := range widgetRegistry {
		names = append(names, name)
	}
	return names
}

// RegisterBuiltins registers the builtin widgets. Call this during
// initialization if you want to construct widgets through the registry.
func RegisterBuiltins() {
	RegisterWidget(WidgetGrid, func() Element {
		return &Grid{strategy: defaultStrategy()}
	})
}
