package goofx_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/goofx/v2"
)

var _ = Describe("goofx", func() {
	Describe("NewAccount()", func() {
		account := func(sgml string) (goofx.Account, error) {
			return goofx.NewAccount(normalize(sgml).Children[0])
		}

		Context("when given a bank account", func() {
			It("should return a BankAccount", func() {
				a, err := account(`<OFX><BANKACCTFROM><BANKID>0341<BRANCHID>1234<ACCTID>9999999999<ACCTTYPE>CHECKING</BANKACCTFROM></OFX>`)
				Expect(err).To(BeNil())
				Expect(a).To(BeAssignableToTypeOf(&goofx.BankAccount{}))
				b := a.(*goofx.BankAccount)
				Expect(b.ElementName).To(Equal("BANKACCTFROM"))
				Expect(b.BankID).To(Equal(str("0341")))
				Expect(b.BranchID).To(Equal(str("1234")))
				Expect(b.AccountID).To(Equal(str("9999999999")))
				Expect(b.AccountKey).To(BeNil())
				Expect(b.AccountType).To(Equal(goofx.CHECKING))
				Expect(b.AccountTypeValue).To(Equal("CHECKING"))
				Expect(b.Extension).To(BeNil())
				Expect(a.Common().AccountID).To(Equal(str("9999999999")))
			})
			It("should keep a credit line a BankAccount", func() {
				a, err := account(`<OFX><BANKACCTFROM><BANKID>1<ACCTID>5555555555555555<ACCTTYPE>CREDITLINE</BANKACCTFROM></OFX>`)
				Expect(err).To(BeNil())
				Expect(a).To(BeAssignableToTypeOf(&goofx.BankAccount{}))
				Expect(a.(*goofx.BankAccount).AccountType).To(Equal(goofx.CREDITLINE))
			})
			It("should keep the extension subtree", func() {
				a, err := account(`<OFX><BANKACCTTO><ACCTID>1<ACCTTYPE>SAVINGS<EXTBANKACCTTO><NAME>Joint</EXTBANKACCTTO></BANKACCTTO></OFX>`)
				Expect(err).To(BeNil())
				ext := a.(*goofx.BankAccount).Extension
				Expect(ext).NotTo(BeNil())
				Expect(ext.RequireChildText("NAME")).To(Equal("Joint"))
			})
			It("should require the account type", func() {
				_, err := account(`<OFX><BANKACCTFROM><BANKID>1<ACCTID>2</BANKACCTFROM></OFX>`)
				Expect(err).To(MatchError("error - schema violation at OFX/BANKACCTFROM <ACCTTYPE>: required child is missing"))
			})
			It("should reject unknown account types", func() {
				_, err := account(`<OFX><BANKACCTFROM><ACCTID>2<ACCTTYPE>BROKERAGE</BANKACCTFROM></OFX>`)
				Expect(err).To(MatchError(`error - can not parse "BROKERAGE" as ACCTTYPE at OFX/BANKACCTFROM/ACCTTYPE`))
			})
		})

		DescribeTable("should pick the variant from the element name", func(sgml string, expected goofx.Account) {
			a, err := account(sgml)
			Expect(err).To(BeNil())
			Expect(a).To(BeAssignableToTypeOf(expected))
		},
			Entry("CCACCTFROM", `<OFX><CCACCTFROM><ACCTID>1</CCACCTFROM></OFX>`, &goofx.CreditAccount{}),
			Entry("CCACCTTO", `<OFX><CCACCTTO><ACCTID>1</CCACCTTO></OFX>`, &goofx.CreditAccount{}),
			Entry("INVACCTFROM", `<OFX><INVACCTFROM><BROKERID>b<ACCTID>1</INVACCTFROM></OFX>`, &goofx.InvestmentAccount{}),
			Entry("PRESACCTTO", `<OFX><PRESACCTTO><BILLERID>x</PRESACCTTO></OFX>`, &goofx.BillPresentmentAccount{}),
		)

		It("should read credit card accounts without bank fields", func() {
			a, err := account(`<OFX><CCACCTFROM><ACCTID>1111880001112222<ACCTKEY>k</CCACCTFROM></OFX>`)
			Expect(err).To(BeNil())
			Expect(a.Common()).To(Equal(goofx.AccountCommon{
				ElementName: "CCACCTFROM",
				AccountID:   str("1111880001112222"),
				AccountKey:  str("k"),
			}))
		})
		It("should read investment and bill presentment fields", func() {
			a, err := account(`<OFX><INVACCTFROM><BROKERID>broker.example.com<ACCTID>1</INVACCTFROM></OFX>`)
			Expect(err).To(BeNil())
			Expect(a.(*goofx.InvestmentAccount).BrokerID).To(Equal(str("broker.example.com")))

			a, err = account(`<OFX><PRESACCTFROM><BILLPUB>pub<BILLERID>id<BILLERNAME>Power Co<USERID>u1</PRESACCTFROM></OFX>`)
			Expect(err).To(BeNil())
			p := a.(*goofx.BillPresentmentAccount)
			Expect(p.BillPublisher).To(Equal(str("pub")))
			Expect(p.BillerID).To(Equal(str("id")))
			Expect(p.BillerName).To(Equal(str("Power Co")))
			Expect(p.PresenterNameAddr).To(BeNil())
			Expect(p.PresentmentUserID).To(Equal(str("u1")))
		})
		It("should reject other elements", func() {
			_, err := account(`<OFX><STMTRS></STMTRS></OFX>`)
			Expect(err).To(MatchError("error - schema violation at OFX/STMTRS <STMTRS>: not an account aggregate"))
		})
		It("should reject duplicate account ids", func() {
			_, err := account(`<OFX><CCACCTFROM><ACCTID>1<ACCTID>2</CCACCTFROM></OFX>`)
			Expect(err).To(BeAssignableToTypeOf(&goofx.SchemaViolation{}))
		})
	})
})
