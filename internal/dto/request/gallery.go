package request

type CreateGalleryRequest struct {
	Title     string  `json:"title" validate:"required,min=1,max=200"`
	BookingID *string `json:"booking_id,omitempty" validate:"omitempty,uuid4"`
	IsPublic  bool    `json:"is_public"`
}

type UpdateGalleryRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	IsPublic bool   `json:"is_public"`
}

type AddGalleryImageRequest struct {
	URL      string  `json:"url" validate:"required,url"`
	Caption  *string `json:"caption,omitempty" validate:"omitempty,max=300"`
	Position int     `json:"position" validate:"min=0"`
}
