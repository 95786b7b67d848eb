package goofx

import "strings"

//revive:disable:exported

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDEND      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	HOLD          TransactionType = "HOLD"
	OTHER         TransactionType = "OTHER"
)

var transactionTypes = []TransactionType{
	DEBIT, CREDIT, INTEREST, DIVIDEND, FEE, SERVICECHARGE, DEPOSIT, ATM, POS, TRANSFER, CHECK,
	PAYMENT, CASH, DIRECTDEPOSIT, DIRECTDEBIT, REPEATPAYMENT, HOLD, OTHER,
}

// BankAccountType combines the OFX ACCOUNTENUM and ACCOUNTENUM2 values (CMA only exists in
// the latter).
type BankAccountType string

const (
	CHECKING   BankAccountType = "CHECKING"
	SAVINGS    BankAccountType = "SAVINGS"
	MONEYMRKT  BankAccountType = "MONEYMRKT"
	CREDITLINE BankAccountType = "CREDITLINE"
	NA         BankAccountType = "NA"
	HOMELOAN   BankAccountType = "HOMELOAN"
	CMA        BankAccountType = "CMA"
)

var bankAccountTypes = []BankAccountType{CHECKING, SAVINGS, MONEYMRKT, CREDITLINE, NA, HOMELOAN, CMA}

// CorrectionAction is the <CORRECTACTION> of a transaction correcting an earlier one.
type CorrectionAction string

const (
	REPLACE CorrectionAction = "REPLACE"
	DELETE  CorrectionAction = "DELETE"
)

var correctionActions = []CorrectionAction{REPLACE, DELETE}

// ParseTransactionType returns the TransactionType for s, ignoring case.
func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range transactionTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", &ScalarFormatError{Kind: "TRNTYPE", Value: s}
}

// ParseBankAccountType returns the BankAccountType for s, ignoring case.
func ParseBankAccountType(s string) (BankAccountType, error) {
	for _, t := range bankAccountTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", &ScalarFormatError{Kind: "ACCTTYPE", Value: s}
}

// ParseCorrectionAction returns the CorrectionAction for s, ignoring case.
func ParseCorrectionAction(s string) (CorrectionAction, error) {
	for _, a := range correctionActions {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return "", &ScalarFormatError{Kind: "CORRECTACTION", Value: s}
}
