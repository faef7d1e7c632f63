package enum

// CashMovementType identifies the origin of a cash register movement
type CashMovementType string

const (
	CashSale        CashMovementType = "SALE"
	CashExpense     CashMovementType = "EXPENSE"
	CashDebtPayment CashMovementType = "DEBT_PAYMENT"
	CashAdjust      CashMovementType = "ADJUST"
)
