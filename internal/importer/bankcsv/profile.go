package bankcsv

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one unsigned column whose rows are all
	// withdrawals (e.g. 利用金額 on a card statement).
	amountSingle amountMode = iota
	// amountSplit means separate withdrawal and deposit columns
	// (e.g. 出金金額 / 入金金額).
	amountSplit
)

// Profile describes the column layout of one statement export format.
// Adding support for a new bank is just adding a new Profile.
type Profile struct {
	Name          string
	DateCol       string
	DescCol       string
	AmountMode    amountMode
	AmountCol     string // used when AmountMode == amountSingle
	WithdrawalCol string // used when AmountMode == amountSplit
	DepositCol    string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.WithdrawalCol, p.DepositCol)
	}

	return cols
}

// BankProfiles lists deposit account statement layouts, most specific
// first to avoid false matches.
func BankProfiles() []Profile {
	return []Profile{
		{
			Name:          "ネット銀行",
			DateCol:       "日付",
			DescCol:       "摘要",
			AmountMode:    amountSplit,
			WithdrawalCol: "出金金額",
			DepositCol:    "入金金額",
		},
		{
			Name:          "通帳",
			DateCol:       "年月日",
			DescCol:       "お取り扱い内容",
			AmountMode:    amountSplit,
			WithdrawalCol: "お支払金額",
			DepositCol:    "お預り金額",
		},
	}
}

// CardProfiles lists credit card usage statement layouts.
func CardProfiles() []Profile {
	return []Profile{
		{
			Name:       "カード利用明細",
			DateCol:    "利用日",
			DescCol:    "利用店名",
			AmountMode: amountSingle,
			AmountCol:  "利用金額",
		},
	}
}
