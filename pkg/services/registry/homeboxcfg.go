// Package registry reads Homebox connection profiles from an ini file
// (~/.homeboxcfg by convention): one section per profile with host and token
// keys.
package registry

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.ConnectionProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.ConnectionProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.ConnectionProfile{}, fmt.Errorf("profile %s not found", name)
	}

	host := section.Key("host").String()
	token := section.Key("token").String()
	if host == "" {
		return domain.ConnectionProfile{}, fmt.Errorf("profile %s has no host", name)
	}

	return domain.ConnectionProfile{
		Name:  name,
		Host:  host,
		Token: token,
	}, nil
}
