package stack

// View switches between the customization form and the generated result.
type View int

const (
	Customizing View = iota
	Generated
)

// String returns "customizing" or "generated".
func (v View) String() string {
	switch v {
	case Customizing:
		return "customizing"
	case Generated:
		return "generated"
	}
	return "unknown"
}

// Generate moves to the generated view. The selection is not consulted.
func (v *View) Generate() { *v = Generated }

// Back returns to the customization view.
func (v *View) Back() { *v = Customizing }

// Drawer is the visibility of the off-canvas filter panel on narrow screens.
type Drawer int

const (
	DrawerClosed Drawer = iota
	DrawerOpen
)

// String returns "open" or "closed".
func (d Drawer) String() string {
	if d == DrawerOpen {
		return "open"
	}
	return "closed"
}

// Open shows the drawer.
func (d *Drawer) Open() { *d = DrawerOpen }

// Close hides the drawer.
func (d *Drawer) Close() { *d = DrawerClosed }

// IsOpen reports whether the drawer is visible.
func (d Drawer) IsOpen() bool { return d == DrawerOpen }
