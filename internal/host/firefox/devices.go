package firefox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tabfinder/internal/host"
)

type devicesFile struct {
	Devices []struct {
		Name     string `yaml:"name"`
		Sessions []struct {
			Tabs []struct {
				Title string `yaml:"title"`
				URL   string `yaml:"url"`
			} `yaml:"tabs"`
		} `yaml:"sessions"`
	} `yaml:"devices"`
}

// ReadDevices loads the synced-devices snapshot. A missing file means no
// remote devices.
func ReadDevices(path string) ([]host.Device, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read devices: %w", err)
	}
	var file devicesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse devices %s: %w", path, err)
	}
	devices := make([]host.Device, 0, len(file.Devices))
	for _, d := range file.Devices {
		device := host.Device{Name: d.Name}
		for w, s := range d.Sessions {
			session := host.Session{}
			for i, t := range s.Tabs {
				session.Tabs = append(session.Tabs, host.Tab{Window: w + 1, Index: i, Title: t.Title, URL: t.URL})
			}
			device.Sessions = append(device.Sessions, session)
		}
		devices = append(devices, device)
	}
	return devices, nil
}
