package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Config struct {
	Address             string       `json:"address"`
	Port                int          `json:"port"`
	BindTimeout         DurationJSON `json:"timeout,omitempty"`
	UpstreamTimeout     DurationJSON `json:"upstream_timeout,omitempty"`
	RecordTTL           uint32       `json:"record_ttl,omitempty"`
	Nameservers         []string     `json:"nameservers,omitempty"`
	ExcludedNameservers []string     `json:"excluded_nameservers,omitempty"`
	ResolvConfPath      string       `json:"resolv_conf_path,omitempty"`

	PoolCIDR string `json:"pool_cidr"`
	PoolSize int    `json:"pool_size,omitempty"`

	LogLevel string `json:"log_level,omitempty"`

	API     APIConfig     `json:"api"`
	Metrics MetricsConfig `json:"metrics"`
}

type APIConfig struct {
	Port int `json:"port"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
	Port    int    `json:"port"`
}

func (c Config) GetLogLevel() (boshlog.LogLevel, error) {
	level, err := boshlog.Levelify(c.LogLevel)
	if err != nil {
		return boshlog.LevelNone, err
	}
	return level, nil
}

type DurationJSON time.Duration

func (t *DurationJSON) UnmarshalJSON(b []byte) error {
	var s string

	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	timeoutDuration, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	*t = DurationJSON(timeoutDuration)

	return nil
}

func (t DurationJSON) MarshalJSON() (b []byte, err error) {
	d := time.Duration(t)
	return []byte(fmt.Sprintf(`"%s"`, d.String())), nil
}

func NewDefaultConfig() Config {
	return Config{
		BindTimeout:     DurationJSON(5 * time.Second),
		UpstreamTimeout: DurationJSON(5 * time.Second),
		RecordTTL:       5,
		ResolvConfPath:  "/etc/resolv.conf",
		Metrics: MetricsConfig{
			Enabled: false,
			Address: "127.0.0.1",
			Port:    53088,
		},
		LogLevel: boshlog.AsString(boshlog.LevelDebug),
	}
}

func LoadFromFile(configFilePath string, fs boshsys.FileSystem) (Config, error) {
	configFileContents, err := fs.ReadFile(configFilePath)
	if err != nil {
		return Config{}, err
	}

	c := NewDefaultConfig()
	if err := json.Unmarshal(configFileContents, &c); err != nil {
		return Config{}, err
	}

	if c.Port == 0 {
		return Config{}, errors.New("port is required")
	}

	if c.PoolCIDR == "" {
		return Config{}, errors.New("pool_cidr is required")
	}

	if _, _, err := net.ParseCIDR(c.PoolCIDR); err != nil {
		return Config{}, fmt.Errorf("invalid pool_cidr: %s", err)
	}

	c.Nameservers, err = AppendDefaultDNSPortIfMissing(c.Nameservers)
	if err != nil {
		return Config{}, err
	}

	c.ExcludedNameservers, err = AppendDefaultDNSPortIfMissing(c.ExcludedNameservers)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func AppendDefaultDNSPortIfMissing(nameservers []string) ([]string, error) {
	nameserversWithPort := []string{}
	for _, nameserver := range nameservers {
		_, _, err := net.SplitHostPort(nameserver)
		cleanedUpNameserver := nameserver

		if err != nil {
			if strings.Contains(err.Error(), "missing port in address") || strings.Contains(err.Error(), "too many colons in address") {
				ip := net.ParseIP(nameserver)
				if ip == nil {
					return []string{}, fmt.Errorf("invalid IP address %s", nameserver)
				}

				cleanedUpNameserver = net.JoinHostPort(ip.String(), "53")
			} else {
				return []string{}, err
			}
		}

		nameserversWithPort = append(nameserversWithPort, cleanedUpNameserver)
	}
	return nameserversWithPort, nil
}
