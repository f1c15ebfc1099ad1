package domain

// RelanceRunError records a per-invoice failure during a reminder run.
// One invoice failing must not abort the rest of the scan.
type RelanceRunError struct {
	InvoiceID string `json:"invoiceID"`
	RuleID    string `json:"ruleID,omitempty"`
	Error     string `json:"error"`
}

// RelanceRunResult is the outcome of one reminder engine batch run.
type RelanceRunResult struct {
	Processed      int               `json:"processed"` // Overdue invoices examined
	RulesEvaluated int               `json:"rulesEvaluated"`
	EmailsSent     int               `json:"emailsSent"`
	SMSSent        int               `json:"smsSent"`
	StatusChanges  int               `json:"statusChanges"`
	Skipped        int               `json:"skipped"` // Duplicate rule/invoice pairs
	Errors         []RelanceRunError `json:"errors,omitempty"`
}
