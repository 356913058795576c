package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// relaunched. Chrome's resident memory only grows, so long-running servers
// recycle it.
const DefaultMaxPages = 75

// browser owns a headless Chrome process and relaunches it every maxPages
// pages. Safe for concurrent use.
type browser struct {
	mu       sync.Mutex
	rod      *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
}

func launchBrowser(maxPages int) (*browser, error) {
	b := &browser{maxPages: maxPages}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// acquire returns the live browser, relaunching first when the page budget
// is spent. A failed relaunch keeps the old browser in service.
func (b *browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rod == nil {
		return nil, fmt.Errorf("browser is closed")
	}
	if b.maxPages > 0 && b.pages >= b.maxPages {
		oldRod, oldLauncher := b.rod, b.launcher
		if err := b.launch(); err == nil {
			_ = oldRod.Close()
			oldLauncher.Kill()
			b.pages = 0
		}
	}
	b.pages++
	return b.rod, nil
}

func (b *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	r := rod.New().ControlURL(u)
	if err := r.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.rod = r
	b.launcher = l
	return nil
}

func (b *browser) pid() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.rod != nil {
		err = b.rod.Close()
		b.rod = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}
