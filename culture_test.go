package goofx_test

import (
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/goofx/v2"
	"github.com/rockstardevs/goofx/v2/mocks"
)

var _ = Describe("goofx", func() {
	Describe("DefaultCultureResolver()", func() {
		DescribeTable("should map supported languages", func(language string, expected goofx.Culture) {
			c, err := goofx.DefaultCultureResolver().ResolveCulture(language)
			Expect(err).To(BeNil())
			Expect(*c).To(Equal(expected))
		},
			Entry("ENG", "ENG", goofx.CultureENUS),
			Entry("POR", "POR", goofx.CulturePTBR),
		)
		DescribeTable("should reject other languages", func(language string) {
			c, err := goofx.DefaultCultureResolver().ResolveCulture(language)
			Expect(c).To(BeNil())
			var ule *goofx.UnsupportedLocaleError
			Expect(errors.As(err, &ule)).To(BeTrue())
			Expect(ule.Language).To(Equal(language))
		},
			Entry("FRA", "FRA"),
			Entry("lower case", "eng"),
			Entry("blank", ""),
		)
		It("should describe a blank language", func() {
			_, err := goofx.DefaultCultureResolver().ResolveCulture("")
			Expect(err).To(MatchError("error - <SONRS><LANGUAGE> is missing or blank"))
		})
	})

	Describe("Parse() culture resolution", func() {
		var (
			ctrl     *gomock.Controller
			resolver *mocks.MockCultureResolver
		)
		const file = "<OFX>" + signOn + "</OFX>"

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			resolver = mocks.NewMockCultureResolver(ctrl)
		})
		AfterEach(func() {
			ctrl.Finish()
		})

		It("should ask the resolver with the sign-on language", func() {
			custom := goofx.Culture{Name: "en-GB", RadixPoint: '.'}
			resolver.EXPECT().ResolveCulture("ENG").Return(&custom, nil)
			d, err := goofx.ParseString(file, &goofx.Options{CultureResolver: resolver})
			Expect(err).To(BeNil())
			Expect(d.Culture).To(Equal(custom))
		})
		It("should propagate resolver errors", func() {
			resolver.EXPECT().ResolveCulture("ENG").Return(nil, &goofx.UnsupportedLocaleError{Language: "ENG"})
			_, err := goofx.ParseString(file, &goofx.Options{CultureResolver: resolver})
			Expect(err).To(BeAssignableToTypeOf(&goofx.UnsupportedLocaleError{}))
		})
		It("should reject a resolver answering nothing", func() {
			resolver.EXPECT().ResolveCulture("ENG").Return(nil, nil)
			_, err := goofx.ParseString(file, &goofx.Options{CultureResolver: resolver})
			var ccv *goofx.ConfigurationContractViolation
			Expect(errors.As(err, &ccv)).To(BeTrue())
			Expect(ccv.Strategy).To(Equal("culture resolver"))
		})
		It("should accept a resolver function", func() {
			f := goofx.CultureResolverFunc(func(string) (*goofx.Culture, error) {
				return &goofx.CulturePTBR, nil
			})
			d, err := goofx.ParseString(file, &goofx.Options{CultureResolver: f})
			Expect(err).To(BeNil())
			Expect(d.Culture).To(Equal(goofx.CulturePTBR))
		})
	})
})
