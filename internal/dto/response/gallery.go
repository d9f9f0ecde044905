package response

import (
	"time"

	"photodesk/internal/data/entity"
)

type GalleryResponse struct {
	ID        string                 `json:"id"`
	BookingID *string                `json:"booking_id,omitempty"`
	Title     string                 `json:"title"`
	IsPublic  bool                   `json:"is_public"`
	Images    []GalleryImageResponse `json:"images,omitempty"`
	ShareURL  string                 `json:"share_url,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type GalleryImageResponse struct {
	ID       string  `json:"id"`
	URL      string  `json:"url"`
	Caption  *string `json:"caption,omitempty"`
	Position int     `json:"position"`
}

func GalleryToResponse(gallery *entity.Gallery, images []*entity.GalleryImage) GalleryResponse {
	resp := GalleryResponse{
		ID:        gallery.ID.String(),
		Title:     gallery.Title,
		IsPublic:  gallery.IsPublic,
		CreatedAt: gallery.CreatedAt,
	}

	if gallery.BookingID != nil {
		id := gallery.BookingID.String()
		resp.BookingID = &id
	}

	for _, image := range images {
		resp.Images = append(resp.Images, GalleryImageResponse{
			ID:       image.ID.String(),
			URL:      image.URL,
			Caption:  image.Caption,
			Position: image.Position,
		})
	}

	return resp
}
