package models

// MaxRoomImages caps the number of images attached to a room.
const MaxRoomImages = 5

// Room is an entry of the room catalog.
type Room struct {
	ID          string   `mapstructure:"-" json:"id"`
	Name        string   `mapstructure:"name" json:"name"`
	Type        string   `mapstructure:"type" json:"type"`
	Description string   `mapstructure:"description" json:"description"`
	Images      []string `mapstructure:"images" json:"images"`
	Price       string   `mapstructure:"price" json:"price"`
	Adults      string   `mapstructure:"adults" json:"adults"`
	Children    string   `mapstructure:"children" json:"children"`
}

// RoomDraft carries the editable fields of a room under creation or edit.
// Images holds the URLs already attached; new uploads are added by the room service.
type RoomDraft struct {
	Name        string   `form:"name" validate:"required"`
	Type        string   `form:"type" validate:"required"`
	Description string   `form:"description" validate:"required"`
	Images      []string `form:"images" validate:"dive,required"`
	Price       string   `form:"price" validate:"required,numeric"`
	Adults      string   `form:"adults" validate:"required,numeric"`
	Children    string   `form:"children" validate:"required,numeric"`
}

// Fields returns the document fields written for the draft.
func (d RoomDraft) Fields() map[string]any {
	return map[string]any{
		"name":        d.Name,
		"type":        d.Type,
		"description": d.Description,
		"images":      d.Images,
		"price":       d.Price,
		"adults":      d.Adults,
		"children":    d.Children,
	}
}

// Draft returns an editable copy of the room.
func (r Room) Draft() RoomDraft {
	images := make([]string, len(r.Images))
	copy(images, r.Images)
	return RoomDraft{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		Images:      images,
		Price:       r.Price,
		Adults:      r.Adults,
		Children:    r.Children,
	}
}
