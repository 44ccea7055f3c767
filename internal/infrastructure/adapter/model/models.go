package model

// All returns every model in dependency order for AutoMigrate
func All() []any {
	return []any{
		&User{},
		&Challenge{},
		&Product{},
		&ProductRedeemer{},
		&LedgerEntry{},
		&GiftShopTransaction{},
		&DiscussionPost{},
		&Comment{},
		&RedemptionIntent{},
		&UserLock{},
	}
}
