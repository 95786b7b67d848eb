package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/tidwall/pretty"

	"github.com/rockstardevs/goofx/v2"
)

var (
	charset = flag.String("charset", "windows-1252", "charset of the input file")
	dialect = flag.String("dialect", "", "force the standard or extended dialect instead of detecting it")
	color   = flag.Bool("color", false, "colorize the JSON output")
)

type transaction struct {
	Type     goofx.TransactionType `json:"type"`
	Posted   string                `json:"posted,omitempty"`
	Amount   string                `json:"amount"`
	ID       string                `json:"id"`
	Name     *string               `json:"name,omitempty"`
	Memo     *string               `json:"memo,omitempty"`
	Currency string                `json:"currency"`
}

type statement struct {
	Account      string        `json:"account"`
	Kind         string        `json:"kind"`
	Currency     string        `json:"currency"`
	Ledger       string        `json:"ledger_balance"`
	Available    string        `json:"available_balance,omitempty"`
	Transactions []transaction `json:"transactions"`
}

type summary struct {
	Institution string      `json:"institution,omitempty"`
	Language    string      `json:"language"`
	Culture     string      `json:"culture"`
	Dialect     string      `json:"dialect"`
	Statements  []statement `json:"statements"`
}

func accountKind(a goofx.Account) string {
	switch v := a.(type) {
	case *goofx.BankAccount:
		return "bank/" + string(v.AccountType)
	case *goofx.CreditAccount:
		return "credit"
	case *goofx.InvestmentAccount:
		return "investment"
	case *goofx.BillPresentmentAccount:
		return "bill"
	default:
		return "unknown"
	}
}

func summarize(d *goofx.Document) summary {
	s := summary{
		Language:   d.SignOn.Language,
		Culture:    d.Culture.Name,
		Dialect:    d.Dialect.String(),
		Statements: make([]statement, 0, len(d.Statements())),
	}
	if fi := d.SignOn.Institution; fi != nil && fi.Organization != nil {
		s.Institution = *fi.Organization
	}
	for _, stmt := range d.Statements() {
		st := statement{
			Kind:         accountKind(stmt.AccountFrom),
			Currency:     stmt.DefaultCurrency,
			Ledger:       stmt.LedgerBalance.Amount.String(),
			Transactions: make([]transaction, 0, len(stmt.Transactions())),
		}
		if id := stmt.AccountFrom.Common().AccountID; id != nil {
			st.Account = *id
		}
		if stmt.AvailableBalance != nil {
			st.Available = stmt.AvailableBalance.Amount.String()
		}
		for _, t := range stmt.Transactions() {
			txn := transaction{
				Type:     t.Type,
				Amount:   t.Amount.String(),
				ID:       t.ID,
				Name:     t.Name,
				Memo:     t.Memo,
				Currency: t.EffectiveCurrency(),
			}
			if t.Posted != nil {
				txn.Posted = t.Posted.Format("2006-01-02T15:04:05-07:00")
			}
			st.Transactions = append(st.Transactions, txn)
		}
		s.Statements = append(s.Statements, st)
	}
	return s
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] FILE.ofx\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	enc, err := goofx.EncodingByName(*charset)
	if err != nil {
		glog.Exitf("error parsing flags - %s", err)
	}
	opts := &goofx.Options{Encoding: enc, DialectPolicy: goofx.MessageSetDialectPolicy{}}
	if *dialect != "" {
		forced, err := goofx.ParseDialect(*dialect)
		if err != nil {
			glog.Exitf("error parsing flags - %s", err)
		}
		opts.DialectPolicy = goofx.DialectPolicyFunc(func(goofx.Header, *goofx.Element) goofx.Dialect {
			return forced
		})
	}

	document, err := goofx.ParseFile(flag.Arg(0), opts)
	if err != nil {
		glog.Exitf("error parsing data file - %s", err)
	}
	glog.V(2).Infof("parsed %d statements", len(document.Statements()))

	out, err := json.Marshal(summarize(document))
	if err != nil {
		glog.Exitf("error encoding summary - %s", err)
	}
	out = pretty.Pretty(out)
	if *color {
		out = pretty.Color(out, nil)
	}
	os.Stdout.Write(out)
}
