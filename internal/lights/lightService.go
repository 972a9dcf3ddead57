package lights

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/huecli/internal/concurrency"
	"github.com/wheelibin/huecli/internal/hue"
	"github.com/wheelibin/huecli/internal/models"
)

type hueAPIService interface {
	GetLights(ctx context.Context) ([]byte, error)
	SetLightOn(ctx context.Context, id int, on bool) ([]byte, error)
}

type printer interface {
	JSON(body []byte) error
	Light(l models.Light)
	Switched(body []byte, on bool)
}

type LightService struct {
	logger   *log.Logger
	api      hueAPIService
	printer  printer
	throttle time.Duration
}

func NewLightService(logger *log.Logger, api hueAPIService, printer printer, throttle time.Duration) *LightService {
	return &LightService{logger: logger, api: api, printer: printer, throttle: throttle}
}

// List prints the bridge's lights, either as the raw document (verbose) or as
// one "<id> <name>" line per light.
func (l *LightService) List(ctx context.Context, verbose bool) error {

	body, err := l.api.GetLights(ctx)
	if err != nil {
		if body == nil {
			return err
		}
		l.logger.Warn("lights request failed", "err", err)
	}

	if verbose {
		return l.printer.JSON(body)
	}

	resp, err := hue.ParseLights(body)
	if err != nil {
		return err
	}

	lights := CompactLights(resp)
	l.logger.Debug("Read lights", "total", len(resp), "listed", len(lights))

	for _, light := range lights {
		l.printer.Light(light)
	}
	return nil
}

// CompactLights walks ids 1, 2, 3... and stops at the first id the bridge did
// not return, so lights after a gap are not listed.
func CompactLights(resp hue.LightsResponse) []models.Light {
	lights := make([]models.Light, 0, len(resp))
	for id := 1; id <= len(resp); id++ {
		light, found := resp[strconv.Itoa(id)]
		if !found {
			break
		}
		lights = append(lights, models.Light{ID: id, Name: light.Name, On: light.State.On})
	}
	return lights
}

// Switch turns each light on or off in turn, echoing every response. A failed
// light does not stop the others.
func (l *LightService) Switch(ctx context.Context, ids []int, on bool) error {

	tw := concurrency.NewThrottledWorker(l.throttle, func(id int) error {
		l.logger.Debug("Switching light", "light", id, "on", on)

		body, err := l.api.SetLightOn(ctx, id, on)
		if body != nil {
			l.printer.Switched(body, on)
		}
		if err != nil {
			l.logger.Error("Unable to switch light", "light", id, "err", err)
			return err
		}
		return nil
	})

	return tw.Run(ctx, ids)
}
