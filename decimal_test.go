package goofx_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/goofx/v2"
)

var _ = Describe("goofx", func() {
	Describe("DecodeDecimal()", func() {
		Context("when given a valid amount", func() {
			DescribeTable("should parse to a decimal.", func(input, expected string) {
				got, err := goofx.DecodeDecimal(input)
				Expect(err).To(BeNil())
				Expect(got).To(EqualDecimal(expected))
			},
				Entry("dot radix, negative", "-666.66", "-666.66"),
				Entry("dot radix, positive", "99.99", "99.99"),
				Entry("comma radix", "24783,31", "24783.31"),
				Entry("comma radix, trailing zeroes", "10,00", "10"),
				Entry("comma radix, negative", "-22785,76", "-22785.76"),
				Entry("explicit plus sign", "+5.5", "5.5"),
				Entry("integer", "42", "42"),
				Entry("leading radix", ".5", "0.5"),
				Entry("trailing radix", "5.", "5"),
			)
		})
		Context("when given an invalid amount", func() {
			DescribeTable("should return a ScalarFormatError.", func(input string) {
				_, err := goofx.DecodeDecimal(input)
				var sfe *goofx.ScalarFormatError
				Expect(errors.As(err, &sfe)).To(BeTrue())
				Expect(sfe.Kind).To(Equal("decimal"))
				Expect(sfe.Value).To(Equal(input))
				Expect(errors.Is(err, goofx.ErrNotImplemented)).To(BeFalse())
			},
				Entry("repeated dot", "1.2.3"),
				Entry("repeated comma", "1,234,5"),
				Entry("mixed radix points", "1,2.3"),
				Entry("grouped thousands", "1,234.56"),
				Entry("empty", ""),
				Entry("sign only", "-"),
				Entry("letters", "12a"),
				Entry("exponent", "1e5"),
				Entry("inner space", "1 000"),
				Entry("currency symbol", "$10.00"),
			)
		})
		Context("when given a recognized but unsupported radix point", func() {
			DescribeTable("should wrap ErrNotImplemented.", func(input string) {
				_, err := goofx.DecodeDecimal(input)
				Expect(errors.Is(err, goofx.ErrNotImplemented)).To(BeTrue())
				Expect(err).To(BeAssignableToTypeOf(&goofx.ScalarFormatError{}))
			},
				Entry("apostrophe", "12'50"),
				Entry("momayyez", "12٫50"),
			)
		})
	})
})
