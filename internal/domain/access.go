package domain

// Scope is the set of rows a user may read. The All flags mean unrestricted.
type Scope struct {
	AllLocations bool
	LocationIDs  []uint
	AllStatuses  bool
	Statuses     []OrderStatus
}

// ScopeFor applies the grant defaults: admins see everything, an empty
// location grant sees no locations, and an empty status grant sees every
// status.
func ScopeFor(user *User, grants *AccessGrants) Scope {
	if user.IsAdmin() {
		return Scope{AllLocations: true, AllStatuses: true}
	}

	scope := Scope{LocationIDs: []uint{}}
	if grants == nil {
		scope.AllStatuses = true
		return scope
	}
	scope.LocationIDs = append(scope.LocationIDs, grants.LocationIDs...)
	if len(grants.Statuses) == 0 {
		scope.AllStatuses = true
	} else {
		scope.Statuses = append(scope.Statuses, grants.Statuses...)
	}
	return scope
}

// LocationFilter returns nil for unrestricted access and the granted ids
// otherwise, matching OrderFilter.LocationIDs.
func (s Scope) LocationFilter() []uint {
	if s.AllLocations {
		return nil
	}
	return s.LocationIDs
}

// StatusFilter returns nil for unrestricted access.
func (s Scope) StatusFilter() []OrderStatus {
	if s.AllStatuses {
		return nil
	}
	return s.Statuses
}

func (s Scope) AllowsLocation(id uint) bool {
	if s.AllLocations {
		return true
	}
	for _, granted := range s.LocationIDs {
		if granted == id {
			return true
		}
	}
	return false
}

// NarrowStatuses intersects requested statuses with the scope. An empty
// request means every status the scope allows.
func (s Scope) NarrowStatuses(requested []OrderStatus) []OrderStatus {
	if len(requested) == 0 {
		return s.StatusFilter()
	}
	if s.AllStatuses {
		return requested
	}

	allowed := make(map[OrderStatus]bool, len(s.Statuses))
	for _, st := range s.Statuses {
		allowed[st] = true
	}
	narrowed := []OrderStatus{}
	for _, st := range requested {
		if allowed[st] {
			narrowed = append(narrowed, st)
		}
	}
	return narrowed
}

// CanViewPage reports whether the user may open a page.
func CanViewPage(user *User, grants *AccessGrants, pageID string) bool {
	if user.IsAdmin() || OpenPages[pageID] {
		return true
	}
	if grants == nil {
		return false
	}
	for _, p := range grants.Permissions {
		if p.PageID == pageID {
			return p.CanView
		}
	}
	return false
}

// CanEditPage reports whether the user may change data behind a page.
func CanEditPage(user *User, grants *AccessGrants, pageID string) bool {
	if user.IsAdmin() {
		return true
	}
	if grants == nil {
		return false
	}
	for _, p := range grants.Permissions {
		if p.PageID == pageID {
			return p.CanEdit
		}
	}
	return false
}
