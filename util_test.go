package goofx_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/goofx/v2"
)

var _ = Describe("goofx", func() {
	Describe("EscapeString()", func() {
		Context("when given a string with unescaped chars", func() {
			It("should return a string with escaped chars", func() {
				input := "x < > \" ' & \r \t \n \x00"
				expected := "x &lt; &gt; &#34; &#39; &amp; &#xD; &#x9; &#xA; \ufffd"
				Expect(goofx.EscapeString(input)).To(Equal(expected))
			})
		})
		Context("when given plain text", func() {
			It("should return it unchanged", func() {
				Expect(goofx.EscapeString("RESGATE INVEST")).To(Equal("RESGATE INVEST"))
			})
		})
	})
})
