// Package ctrlstyle resolves the visual style of interactive controls from
// design tokens.
//
// A control is described by a Variant (family, tone, size, shape) and an
// InteractionState (pressed, selected, checked, ...). A Composer reduces the
// state to one EffectiveStateKey per attribute group and looks every
// attribute up in an immutable token Table, producing a StyleDescriptor.
//
// # Composition
//
// Compose a button with the embedded ELEVATE tokens:
//
//	c := ctrlstyle.Default()
//	d := c.Compose(
//		ctrlstyle.Button(ctrlstyle.ButtonPrimary, ctrlstyle.SizeMedium, ctrlstyle.ShapeDefault),
//		ctrlstyle.InteractionState{Pressed: true},
//	)
//	fmt.Println(d.Background.Hex(), d.FontSize)
//
// # Token sources
//
// Tables are built from YAML or CSS token documents:
//
//	result, err := ctrlstyle.Load(ctrlstyle.LoadConfig{
//		Sources: []string{"tokens/**/*.yaml"},
//	})
//	c, err := ctrlstyle.NewComposer(ctrlstyle.DefaultConfig(), result.Table)
//
// NewComposer rejects incomplete tables, so Compose never meets a missing
// token. Audit reports every problem of a table at once.
//
// # CLI Tool
//
// ctrlstyle also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/ctrlstyle/cmd/ctrlstyle@latest
package ctrlstyle
