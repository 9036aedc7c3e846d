package handler

import (
	"phonebook/internal/domain/entity"
	"phonebook/internal/domain/service"
	"phonebook/internal/usecase"
)

// NumberResponse is the public shape of a phone number.
type NumberResponse struct {
	ID     string  `json:"id"`
	Number *string `json:"number"`
	Type   string  `json:"type"`
}

// EntryResponse is the public shape of a phonebook entry. Identifiers are opaque tokens.
type EntryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	City        string           `json:"city"`
	Street      string           `json:"street"`
	PostalCode  string           `json:"postalCode"`
	Country     string           `json:"country"`
	Type        string           `json:"type"`
	Numbers     []NumberResponse `json:"numbers"`
	Groups      []string         `json:"groups"`
	Rating      string           `json:"rating"`
	RatingCount int64            `json:"ratingCount"`
}

// EntryPageResponse is one page of a listing.
type EntryPageResponse struct {
	Items  []EntryResponse `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// DeletedResponse acknowledges a deletion.
type DeletedResponse struct {
	ID string `json:"id"`
}

// AddToGroupRequest names the group to attach.
type AddToGroupRequest struct {
	Name string `json:"name"`
}

// AddRatingRequest carries a rate. The presence check happens here, the range check in the use case.
type AddRatingRequest struct {
	Rate *int `json:"rate" validate:"required"`
}

func newEntryResponse(codec service.IdentifierCodec, view *entity.EntryView) EntryResponse {
	entry := view.Entry
	resp := EntryResponse{
		ID:          codec.Encode(entity.KindEntry, entry.ID),
		Name:        entry.Name,
		City:        entry.City,
		Street:      entry.Street,
		PostalCode:  entry.PostalCode,
		Country:     entry.Country,
		Type:        string(entry.Type),
		Numbers:     make([]NumberResponse, 0, len(entry.Numbers)),
		Groups:      make([]string, 0, len(entry.Groups)),
		Rating:      view.Rating.Average(),
		RatingCount: view.Rating.Count,
	}

	for _, number := range entry.Numbers {
		resp.Numbers = append(resp.Numbers, NumberResponse{
			ID:     codec.Encode(entity.KindNumber, number.ID),
			Number: number.Number,
			Type:   string(number.Type),
		})
	}
	resp.Groups = append(resp.Groups, entry.Groups...)

	return resp
}

func newEntryPageResponse(codec service.IdentifierCodec, page *usecase.EntryPage) EntryPageResponse {
	resp := EntryPageResponse{
		Items:  make([]EntryResponse, 0, len(page.Items)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, view := range page.Items {
		resp.Items = append(resp.Items, newEntryResponse(codec, view))
	}

	return resp
}
