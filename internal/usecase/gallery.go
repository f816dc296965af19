package usecase

// GallerySurface is the minimal render target of a lookbook gallery:
// fixed slides and thumbnails carrying an exclusive active marker.
type GallerySurface interface {
	SlideCount() int
	ThumbCount() int
	SetSlideActive(index int, active bool)
	SetThumbActive(index int, active bool)
}

// GalleryController swaps the active slide/thumb pair on thumbnail
// clicks. Galleries with a single slide or no thumbnails stay inert.
type GalleryController struct {
	surface GallerySurface
	enabled bool
}

// NewGalleryController binds a controller to one gallery.
func NewGalleryController(surface GallerySurface) *GalleryController {
	return &GalleryController{
		surface: surface,
		enabled: surface.SlideCount() > 1 && surface.ThumbCount() > 0,
	}
}

// Enabled reports whether the gallery reacts to clicks at all.
func (g *GalleryController) Enabled() bool { return g.enabled }

// OnThumbClick activates the slide and thumbnail at index. Out-of-range
// indexes are ignored.
func (g *GalleryController) OnThumbClick(index int) {
	if !g.enabled || index < 0 || index >= g.surface.SlideCount() {
		return
	}
	for i := 0; i < g.surface.SlideCount(); i++ {
		g.surface.SetSlideActive(i, i == index)
	}
	for i := 0; i < g.surface.ThumbCount(); i++ {
		g.surface.SetThumbActive(i, i == index)
	}
}
