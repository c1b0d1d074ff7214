package models

// GuestProfile is a guest account stored in the users collection.
type GuestProfile struct {
	ID            string `mapstructure:"-" json:"id"`
	Email         string `mapstructure:"email" json:"email"`
	Image         string `mapstructure:"image" json:"image"`
	Username      string `mapstructure:"username" json:"username"`
	Surname       string `mapstructure:"surname" json:"surname"`
	Address       string `mapstructure:"address" json:"address"`
	ContactNumber string `mapstructure:"contactNumber" json:"contactNumber"`
}

// GuestDraft holds the pending edit of one guest profile.
// Image stays empty unless a replacement was uploaded.
type GuestDraft struct {
	Username      string `form:"username"`
	Surname       string `form:"surname"`
	Address       string `form:"address"`
	ContactNumber string `form:"contactNumber"`
	Image         string `form:"-"`
}

// Fields returns the partial update for the draft.
func (d GuestDraft) Fields() map[string]any {
	fields := map[string]any{
		"username":      d.Username,
		"surname":       d.Surname,
		"address":       d.Address,
		"contactNumber": d.ContactNumber,
	}
	if d.Image != "" {
		fields["image"] = d.Image
	}
	return fields
}

// Draft starts an edit from the stored profile.
func (g GuestProfile) Draft() GuestDraft {
	return GuestDraft{
		Username:      g.Username,
		Surname:       g.Surname,
		Address:       g.Address,
		ContactNumber: g.ContactNumber,
	}
}
