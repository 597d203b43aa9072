package config_test

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/config"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {

	var (
		err error
		fs  afero.Fs
	)

	envVars := []string{
		"AWSAPI_REGION", "AWSAPI_ENDPOINT", "AWSAPI_ACCESS_KEY_ID",
		"AWSAPI_SECRET_ACCESS_KEY", "AWSAPI_SESSION_TOKEN",
		"AWSAPI_TIMEOUT", "AWSAPI_LOGLEVEL",
	}
	saved := map[string]*string{}

	BeforeEach(func() {
		fs = afero.NewMemMapFs()

		for _, name := range envVars {
			if v, ok := os.LookupEnv(name); ok {
				saved[name] = &v
			} else {
				saved[name] = nil
			}
			Expect(os.Unsetenv(name)).To(Succeed())
		}
	})

	AfterEach(func() {
		for name, v := range saved {
			if v == nil {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, *v)
			}
		}
	})

	It("uses the defaults when there is no configuration file", func() {

		c, err := config.LoadFile(fs, "/home/user/.awsapi/config.yml")
		Expect(err).ToNot(HaveOccurred())
		Expect(c).To(Equal(config.Default()))
		Expect(c.Region).To(Equal("us-east-1"))
		Expect(c.Timeout).To(Equal(30 * time.Second))
	})

	It("reads the configuration file and applies environment overrides", func() {

		err = afero.WriteFile(fs, "/home/user/.awsapi/config.yml", []byte(testConfigFile), 0600)
		Expect(err).ToNot(HaveOccurred())

		c, err := config.LoadFile(fs, "/home/user/.awsapi/config.yml")
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Region).To(Equal("eu-west-1"))
		Expect(c.Endpoint).To(Equal("http://localhost:4566"))
		Expect(c.AccessKeyID).To(Equal("AKID"))
		Expect(c.SecretAccessKey).To(Equal("SECRET"))
		Expect(c.Timeout).To(Equal(5 * time.Second))
		Expect(c.LogLevel).To(Equal("debug"))

		os.Setenv("AWSAPI_REGION", "ap-south-1")
		os.Setenv("AWSAPI_TIMEOUT", "1m")

		c, err = config.LoadFile(fs, "/home/user/.awsapi/config.yml")
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Region).To(Equal("ap-south-1"))
		Expect(c.Timeout).To(Equal(time.Minute))
		Expect(c.Endpoint).To(Equal("http://localhost:4566"))
	})

	It("fails on an invalid configuration", func() {

		err = afero.WriteFile(fs, "/config.yml", []byte("region: [\n"), 0600)
		Expect(err).ToNot(HaveOccurred())
		_, err = config.LoadFile(fs, "/config.yml")
		Expect(err).To(HaveOccurred())

		err = afero.WriteFile(fs, "/config.yml", []byte("access_key_id: AKID\n"), 0600)
		Expect(err).ToNot(HaveOccurred())
		_, err = config.LoadFile(fs, "/config.yml")
		Expect(awserr.IsInvalidArgument(err)).To(BeTrue())

		os.Setenv("AWSAPI_TIMEOUT", "never")
		_, err = config.LoadFile(fs, "/missing.yml")
		Expect(err).To(HaveOccurred())
	})

	It("returns static credentials when keys are configured", func() {

		c := config.Default()
		c.AccessKeyID = "AKID"
		c.SecretAccessKey = "SECRET"
		c.SessionToken = "TOKEN"

		provider, err := c.CredentialsProvider(context.Background())
		Expect(err).ToNot(HaveOccurred())

		creds, err := provider.Retrieve(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(creds.AccessKeyID).To(Equal("AKID"))
		Expect(creds.SecretAccessKey).To(Equal("SECRET"))
		Expect(creds.SessionToken).To(Equal("TOKEN"))
	})

	It("prints the environment variables and current values", func() {

		var out bytes.Buffer
		config.Default().PrintUsage(&out)

		Expect(out.String()).To(ContainSubstring("AWSAPI_REGION"))
		Expect(out.String()).To(ContainSubstring("AWSAPI_SECRET_ACCESS_KEY"))
		Expect(out.String()).To(ContainSubstring("region   = us-east-1"))
		Expect(out.String()).To(ContainSubstring("timeout  = 30s"))
	})
})

const testConfigFile = `
region: eu-west-1
endpoint: http://localhost:4566
access_key_id: AKID
secret_access_key: SECRET
timeout: 5s
log_level: debug
`
