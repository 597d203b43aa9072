package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/mevansam/awsapi/apigatewayv2"
	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/term"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Output formatting", func() {

	It("joins argument names", func() {
		Expect(joinNames([]string{"NAME"})).To(Equal("NAME"))
		Expect(joinNames([]string{"API_ID", "NAME"})).To(Equal("API_ID and NAME"))
		Expect(joinNames([]string{"A", "B", "C"})).To(Equal("A, B and C"))
		Expect(joinNames(nil)).To(Equal(""))
	})

	It("wraps text at whitespace and indents continuation lines", func() {

		message := "the load balancer prod-lb cannot be found in region us-east-1 " +
			"as it has been deleted or was created in another account"

		lines := strings.Split(wrapText(message, 18, 60), "\n")
		Expect(len(lines)).To(BeNumerically(">", 1))
		for i, l := range lines {
			if i > 0 {
				Expect(l).To(HavePrefix(strings.Repeat(" ", 18)))
				l = l[18:]
			}
			Expect(len(l)).To(BeNumerically("<=", 42))
		}
		Expect(strings.Fields(strings.Join(lines, " "))).To(Equal(strings.Fields(message)))

		Expect(wrapText("short", 4, 80)).To(Equal("short"))
	})

	It("prints results with unset timestamps", func() {

		var out bytes.Buffer
		printResult(&out, []*apigatewayv2.Api{
			{ApiId: aws.String("a1"), Name: aws.String("pets")},
			{
				ApiId:       aws.String("a2"),
				CreatedDate: aws.Time(time.Date(2020, time.October, 1, 10, 20, 30, 0, time.UTC)),
				Tags:        map[string]*string{"env": aws.String("prod")},
			},
		})

		Expect(out.String()).ToNot(ContainSubstring("PANIC"))
		Expect(strings.Count(out.String(), `"CreatedDate"`)).To(Equal(1))
		Expect(out.String()).To(ContainSubstring(`"a1"`))
		Expect(out.String()).To(ContainSubstring(`"2020-10-01T10:20:30Z"`))
		Expect(out.String()).To(ContainSubstring(`"prod"`))
	})

	It("prints errors with a prefix naming their kind", func() {

		enabled := term.Enabled
		term.Enabled = false
		defer func() { term.Enabled = enabled }()

		var out bytes.Buffer
		printError(&out, awserr.InvalidArgument("elb describe-tags", "missing argument NAME"))
		Expect(out.String()).To(HavePrefix("Invalid argument: "))
		Expect(out.String()).To(ContainSubstring("missing argument NAME"))

		out.Reset()
		printError(&out, fmt.Errorf("boom"))
		Expect(out.String()).To(Equal("Error: boom\n"))
	})
})
