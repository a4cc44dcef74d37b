package announcement

type AnnouncementRequest struct {
	Title            string `json:"title" binding:"required,max=255"`
	Content          string `json:"content" binding:"required"`
	AnnouncementType string `json:"announcementType"`
	IsActive         *bool  `json:"isActive"`
}
