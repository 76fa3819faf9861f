package connectiondto

type ConnectionInput struct {
	Platform            string
	Name                string
	StoreURL            string
	ConsumerKey         string
	ConsumerSecret      string
	IsActive            bool
	AutoSync            bool
	SyncIntervalMinutes int
	NotifyURL           string
}
