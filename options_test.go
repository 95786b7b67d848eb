package goofx_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/rockstardevs/goofx/v2"
)

var _ = Describe("goofx", func() {
	Describe("DefaultOptions()", func() {
		It("should populate every strategy", func() {
			opts := goofx.DefaultOptions()
			Expect(opts.Encoding).To(Equal(charmap.Windows1252))
			Expect(opts.DialectPolicy).To(Equal(goofx.AmbiguousDialectPolicy{}))
			Expect(opts.CultureResolver).NotTo(BeNil())
			Expect(opts.Fallback).To(Equal(goofx.DialectStandard))
			Expect(opts.StrictDialect).To(BeFalse())
			Expect(opts.DTD).To(BeIdenticalTo(goofx.OFX160()))
			Expect(opts.Normalizer).NotTo(BeNil())
			Expect(opts.Repairs).To(Equal(goofx.DefaultRepairs()))
		})
	})

	Describe("EncodingByName()", func() {
		It("should resolve charset labels", func() {
			Expect(goofx.EncodingByName("windows-1252")).To(Equal(charmap.Windows1252))
			Expect(goofx.EncodingByName("utf-8")).To(Equal(unicode.UTF8))
		})
		It("should reject unknown labels", func() {
			_, err := goofx.EncodingByName("klingon")
			Expect(err).To(MatchError(ContainSubstring(`error - unknown charset "klingon"`)))
		})
	})

	Describe("Repair", func() {
		It("should restore a missing BANKACCTFROM start tag", func() {
			in := "<CURDEF>BRL</CURDEF>\n<BANKID>0341<ACCTID>1</BANKACCTFROM>"
			out := goofx.ApplyRepairs([]byte(in), goofx.DefaultRepairs())
			Expect(string(out)).To(Equal("<CURDEF>BRL</CURDEF>\n<BANKACCTFROM><BANKID>0341<ACCTID>1</BANKACCTFROM>"))
		})
		It("should leave intact statements alone", func() {
			in := "<CURDEF>BRL</CURDEF>\n<BANKACCTFROM><BANKID>0341"
			Expect(string(goofx.ApplyRepairs([]byte(in), goofx.DefaultRepairs()))).To(Equal(in))
		})
		It("should let parsing succeed on a damaged export", func() {
			damaged := "<OFX>" + signOn + `<BANKMSGSRSV1><STMTTRNRS><TRNUID>1<STATUS><CODE>0<SEVERITY>INFO</STATUS>
				<STMTRS><CURDEF>USD</CURDEF>
				<BANKID>1<ACCTID>2<ACCTTYPE>CHECKING</BANKACCTFROM>
				<BANKTRANLIST><DTSTART>20190101<DTEND>20190131</BANKTRANLIST>
				<LEDGERBAL><BALAMT>1</LEDGERBAL></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`
			d, err := goofx.ParseString(damaged, nil)
			Expect(err).To(BeNil())
			Expect(d.Statements()[0].AccountFrom.Common().AccountID).To(Equal(str("2")))

			_, err = goofx.ParseString(damaged, &goofx.Options{Repairs: []goofx.Repair{}})
			Expect(err).To(HaveOccurred())
		})
	})
})
