package request

type ConnectionRequest struct {
	Platform            string `json:"platform" validate:"omitempty,oneof=woocommerce"`
	Name                string `json:"name" validate:"required,max=255"`
	StoreURL            string `json:"storeUrl" validate:"required,url"`
	ConsumerKey         string `json:"consumerKey" validate:"required"`
	ConsumerSecret      string `json:"consumerSecret"`
	IsActive            bool   `json:"isActive"`
	AutoSync            bool   `json:"autoSync"`
	SyncIntervalMinutes int    `json:"syncIntervalMinutes" validate:"omitempty,min=1"`
	NotifyURL           string `json:"notifyUrl" validate:"omitempty,url"`
}
