package render

// MemoryGallery is a recording lookbook gallery surface with a fixed
// number of slides and thumbnails.
type MemoryGallery struct {
	slides []bool
	thumbs []bool
}

// NewMemoryGallery creates a gallery with no active slide or thumb.
func NewMemoryGallery(slides, thumbs int) *MemoryGallery {
	return &MemoryGallery{
		slides: make([]bool, slides),
		thumbs: make([]bool, thumbs),
	}
}

func (g *MemoryGallery) SlideCount() int { return len(g.slides) }
func (g *MemoryGallery) ThumbCount() int { return len(g.thumbs) }

func (g *MemoryGallery) SetSlideActive(index int, active bool) {
	if index >= 0 && index < len(g.slides) {
		g.slides[index] = active
	}
}

func (g *MemoryGallery) SetThumbActive(index int, active bool) {
	if index >= 0 && index < len(g.thumbs) {
		g.thumbs[index] = active
	}
}

func (g *MemoryGallery) SlideActive(index int) bool {
	return index >= 0 && index < len(g.slides) && g.slides[index]
}

func (g *MemoryGallery) ThumbActive(index int) bool {
	return index >= 0 && index < len(g.thumbs) && g.thumbs[index]
}

// ActiveSlide returns the index of the active slide, or -1.
func (g *MemoryGallery) ActiveSlide() int {
	for i, active := range g.slides {
		if active {
			return i
		}
	}
	return -1
}
