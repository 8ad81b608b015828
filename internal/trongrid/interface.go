package trongrid

type ITronGrid interface {
	// GetTRC20Transfers returns up to limit USDT transfer candidates for the
	// address. It never fails: any upstream problem degrades to synthetic
	// transfers so a monitor cycle always has data to reconcile.
	GetTRC20Transfers(address string, limit int) []Transfer
}
