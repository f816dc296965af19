package usecase

import (
	"testing"

	"github.com/driftline/storefront/internal/render"
)

func TestGalleryController_TogglesExclusively(t *testing.T) {
	gallery := render.NewMemoryGallery(3, 3)
	c := NewGalleryController(gallery)

	if !c.Enabled() {
		t.Fatal("gallery with 3 slides and thumbs should be enabled")
	}

	c.OnThumbClick(1)
	if gallery.ActiveSlide() != 1 {
		t.Errorf("active slide = %d, want 1", gallery.ActiveSlide())
	}
	if !gallery.ThumbActive(1) || gallery.ThumbActive(0) || gallery.ThumbActive(2) {
		t.Error("thumb active state not exclusive to index 1")
	}

	c.OnThumbClick(2)
	if gallery.ActiveSlide() != 2 {
		t.Errorf("active slide = %d, want 2", gallery.ActiveSlide())
	}
	if gallery.SlideActive(1) {
		t.Error("previous slide still active")
	}
}

func TestGalleryController_InertCases(t *testing.T) {
	t.Run("single slide stays inert", func(t *testing.T) {
		gallery := render.NewMemoryGallery(1, 1)
		c := NewGalleryController(gallery)

		if c.Enabled() {
			t.Error("single-slide gallery should be inert")
		}
		c.OnThumbClick(0)
		if gallery.ActiveSlide() != -1 {
			t.Error("inert gallery changed state")
		}
	})

	t.Run("no thumbs stays inert", func(t *testing.T) {
		gallery := render.NewMemoryGallery(3, 0)
		c := NewGalleryController(gallery)

		if c.Enabled() {
			t.Error("gallery without thumbs should be inert")
		}
	})

	t.Run("out of range clicks are ignored", func(t *testing.T) {
		gallery := render.NewMemoryGallery(3, 3)
		c := NewGalleryController(gallery)

		c.OnThumbClick(1)
		c.OnThumbClick(-1)
		c.OnThumbClick(7)

		if gallery.ActiveSlide() != 1 {
			t.Errorf("active slide = %d, want 1 after ignored clicks", gallery.ActiveSlide())
		}
	})
}
