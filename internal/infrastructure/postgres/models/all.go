package models

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&LocationModel{},
		&OrderModel{},
		&RawOrderModel{},
		&UserModel{},
		&UserLocationAccessModel{},
		&UserPagePermissionModel{},
		&UserStatusAccessModel{},
		&SessionModel{},
		&StoreConnectionModel{},
		&SyncRunModel{},
		&ImportFailureModel{},
	}
}
