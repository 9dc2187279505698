package firefox

import (
	"context"

	"github.com/atomicstack/tabfinder/internal/host"
)

// Browser implements host.Browser over a profile on disk. Every call reads
// the files afresh so results follow the running browser.
type Browser struct {
	profile Profile
}

var _ host.Browser = (*Browser)(nil)

func NewBrowser(profile Profile) *Browser {
	return &Browser{profile: profile}
}

func (b *Browser) Profile() Profile {
	return b.profile
}

func (b *Browser) Tabs(ctx context.Context) ([]host.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadSessionFile(b.profile.SessionPath())
}

func (b *Browser) SearchBookmarks(ctx context.Context, query string) ([]host.Bookmark, error) {
	return SearchBookmarks(ctx, b.profile.PlacesPath(), query)
}

func (b *Browser) Devices(ctx context.Context) ([]host.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadDevices(b.profile.DevicesFile)
}
