package goofx_test

import (
	"bufio"
	"errors"
	"io/ioutil"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/goofx/v2"
)

const conformantHeader = "OFXHEADER:100\r\nDATA:OFXSGML\r\nVERSION:102\r\nSECURITY:NONE\r\nENCODING:USASCII\r\nCHARSET:1252\r\nCOMPRESSION:NONE\r\nOLDFILEUID:NONE\r\nNEWFILEUID:NONE\r\n"

var _ = Describe("goofx", func() {
	Describe("ReadHeader()", func() {
		read := func(data string) (goofx.Header, string, error) {
			r := bufio.NewReader(strings.NewReader(data))
			h, err := goofx.ReadHeader(r)
			rest, _ := ioutil.ReadAll(r)
			return h, string(rest), err
		}

		Context("when given a conformant header", func() {
			It("should return all fields and stop at the markup", func() {
				h, rest, err := read(conformantHeader + "\r\n<OFX></OFX>")
				Expect(err).To(BeNil())
				Expect(rest).To(Equal("<OFX></OFX>"))
				Expect(h.Len()).To(Equal(9))
				Expect(h.Keys()).To(ConsistOf("OFXHEADER", "DATA", "VERSION", "SECURITY", "ENCODING",
					"CHARSET", "COMPRESSION", "OLDFILEUID", "NEWFILEUID"))
				v, ok := h.Get("OFXHEADER")
				Expect(ok).To(BeTrue())
				Expect(v).To(Equal("100"))
				v, ok = h.Get("CHARSET")
				Expect(ok).To(BeTrue())
				Expect(v).To(Equal("1252"))
			})
		})
		Context("when the blank separator line is missing", func() {
			It("should read the same header as a conformant file", func() {
				conformant, _, err := read(conformantHeader + "\r\n<OFX></OFX>")
				Expect(err).To(BeNil())
				h, rest, err := read(conformantHeader + "<OFX></OFX>")
				Expect(err).To(BeNil())
				Expect(rest).To(Equal("<OFX></OFX>"))
				Expect(h).To(Equal(conformant))
			})
		})
		Context("when there are blank lines before the header", func() {
			It("should skip them", func() {
				h, rest, err := read("\n  \nOFXHEADER:100\nDATA:OFXSGML\n\n<OFX>")
				Expect(err).To(BeNil())
				Expect(rest).To(Equal("<OFX>"))
				Expect(h.Keys()).To(Equal([]string{"DATA", "OFXHEADER"}))
			})
		})
		Context("when there is no header at all", func() {
			It("should return an empty header", func() {
				h, rest, err := read("\n<OFX></OFX>")
				Expect(err).To(BeNil())
				Expect(rest).To(Equal("<OFX></OFX>"))
				Expect(h.Len()).To(Equal(0))
			})
		})
		Context("when values contain spaces", func() {
			It("should keep them verbatim", func() {
				h, _, err := read("OLDFILEUID: NONE \n\n<OFX>")
				Expect(err).To(BeNil())
				v, _ := h.Get("OLDFILEUID")
				Expect(v).To(Equal(" NONE "))
			})
		})
		Context("when given a malformed header", func() {
			DescribeTable("should return a HeaderFormatError", func(data, line string) {
				_, _, err := read(data)
				var hfe *goofx.HeaderFormatError
				Expect(errors.As(err, &hfe)).To(BeTrue())
				Expect(hfe.Line).To(Equal(line))
			},
				Entry("line without colon", "OFXHEADER:100\nDATA\n\n<OFX>", "DATA"),
				Entry("line with two colons", "OFXHEADER:100\nDTSERVER:12:00\n\n<OFX>", "DTSERVER:12:00"),
				Entry("first line without colon", "OFXHEADER\n\n<OFX>", "OFXHEADER"),
				Entry("duplicate key", "VERSION:102\nVERSION:103\n\n<OFX>", "VERSION:103"),
				Entry("end of stream inside header", "OFXHEADER:100\nDATA:OFXSGML", ""),
				Entry("empty stream", "", ""),
			)
		})
	})
	Describe("NewHeader()", func() {
		It("should copy the given fields", func() {
			fields := map[string]string{"VERSION": "102"}
			h := goofx.NewHeader(fields)
			fields["VERSION"] = "200"
			v, ok := h.Get("VERSION")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("102"))
			_, ok = h.Get("DATA")
			Expect(ok).To(BeFalse())
		})
	})
})
