// Package config loads the settings shared by the service clients.
// Values are read from the defaults, then from a YAML file and
// finally from AWSAPI_* environment variables, each source
// overriding the previous one.
package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"

	"github.com/mevansam/awsapi/awserr"
	"github.com/mevansam/awsapi/logger"
)

const (
	// environment variable with the path of
	// the configuration file to load
	ConfigFileEnv = "AWSAPI_CONFIG"

	DefaultRegion  = "us-east-1"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	Region   string `yaml:"region" env:"AWSAPI_REGION" usage:"region requests are sent to and signed for"`
	Endpoint string `yaml:"endpoint" env:"AWSAPI_ENDPOINT" usage:"url overriding the service endpoint"`

	AccessKeyID     string `yaml:"access_key_id" env:"AWSAPI_ACCESS_KEY_ID" usage:"static access key id"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWSAPI_SECRET_ACCESS_KEY" usage:"static secret access key"`
	SessionToken    string `yaml:"session_token" env:"AWSAPI_SESSION_TOKEN" usage:"session token of temporary credentials"`

	Timeout  time.Duration `yaml:"timeout" env:"AWSAPI_TIMEOUT" usage:"http request timeout"`
	LogLevel string        `yaml:"log_level" env:"AWSAPI_LOGLEVEL" usage:"one of trace, debug, info, warn or error"`
}

// Default returns the configuration used when no file or
// environment overrides are present.
func Default() *Config {
	return &Config{
		Region:   DefaultRegion,
		Timeout:  DefaultTimeout,
		LogLevel: "error",
	}
}

// DefaultPath returns the path of the configuration file. It
// can be overridden with AWSAPI_CONFIG.
func DefaultPath() (string, error) {

	if path, ok := os.LookupEnv(ConfigFileEnv); ok {
		return path, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".awsapi", "config.yml"), nil
}

// Load reads the configuration from the default path on the
// os file system.
func Load() (*Config, error) {

	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(afero.NewOsFs(), path)
}

// LoadFile reads the configuration from the file at path on the
// given file system. A missing file is not an error.
func LoadFile(fs afero.Fs, path string) (*Config, error) {

	var (
		err  error
		data []byte
	)

	c := Default()

	if data, err = afero.ReadFile(fs, path); err == nil {
		if err = yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrapf(err, "parsing configuration file %s", path)
		}
		logger.DebugMessage("config.LoadFile(): loaded configuration from %s", path)

	} else if os.IsNotExist(err) {
		logger.TraceMessage("config.LoadFile(): configuration file %s does not exist", path)

	} else {
		return nil, errors.Wrapf(err, "reading configuration file %s", path)
	}

	if err = env.Load(c, &env.Options{SliceSep: ","}); err != nil {
		return nil, errors.Wrap(err, "loading configuration from the environment")
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {

	if len(c.Region) == 0 {
		return awserr.InvalidArgument("config", "a region is required")
	}
	if len(c.AccessKeyID) > 0 && len(c.SecretAccessKey) == 0 {
		return awserr.InvalidArgument("config", "a secret access key is required with access key id %s", c.AccessKeyID)
	}
	if c.Timeout < 0 {
		return awserr.InvalidArgument("config", "timeout cannot be negative")
	}
	return nil
}

// CredentialsProvider returns the provider of the credentials
// used to sign requests. Static keys are used if configured,
// otherwise the default credential chain of the aws sdk is
// used.
func (c *Config) CredentialsProvider(ctx context.Context) (aws.CredentialsProvider, error) {

	if len(c.AccessKeyID) > 0 {
		return aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		), nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Region))
	if err != nil {
		return nil, errors.Wrap(err, "loading default aws credentials chain")
	}
	if _, ok := cfg.Credentials.(*aws.CredentialsCache); ok || cfg.Credentials == nil {
		return cfg.Credentials, nil
	}
	return aws.NewCredentialsCache(cfg.Credentials), nil
}

// PrintUsage writes the environment variables that configure the
// clients followed by the values currently in effect.
func (c *Config) PrintUsage(w io.Writer) {

	_, _ = fmt.Fprintf(w, "Environment variables that configure awsapi:\n\n")
	env.Usage(c, w, &env.Options{SliceSep: ","})
	_, _ = fmt.Fprintf(w,
		"\nThe variables override the configuration file, which is read from\n"+
			"~/.awsapi/config.yml or the path given by %s.\n\n"+
			"Current configuration:\n\n"+
			"  region   = %s\n"+
			"  endpoint = %s\n"+
			"  timeout  = %s\n"+
			"  loglevel = %s\n",
		ConfigFileEnv, c.Region, c.Endpoint, c.Timeout, c.LogLevel,
	)
}
