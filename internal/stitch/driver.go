package stitch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lightbake/internal/logger"
	"github.com/Faultbox/lightbake/internal/render"
	"github.com/Faultbox/lightbake/pkg/math"
)

// Stitch runs the ping-pong seam blending over the caller's lightmap data.
// buf holds one Vec4 per texel, row-major, length ctx.Size() squared. On
// success it is fully overwritten with the stitched result; when the backend
// cannot begin a frame the job is aborted, an error is returned, and buf is
// left untouched.
//
// Each iteration renders the current input texture's contents into the other
// texture: the background pass copies the buffer forward, the seam pass pulls
// every seam texel partway toward its counterpart on the neighboring chart.
// Iterating diffuses the correction across a growing halo around each seam.
func Stitch(backend render.Backend, ctx *Context, buf []math.Vec4, settings Settings, seamsModel *render.Model) error {
	if len(buf) != ctx.size*ctx.size {
		panic(fmt.Sprintf("stitch: pixel buffer length %d does not match lightmap size %d", len(buf), ctx.size))
	}
	if settings.NumIterations < 0 {
		panic(fmt.Sprintf("stitch: negative iteration count %d", settings.NumIterations))
	}

	renderPath, err := render.LoadRenderPath(settings.RenderPath)
	if err != nil {
		return fmt.Errorf("loading render path: %w", err)
	}

	// The ping scene reads pong and writes ping; the pong scene does the
	// reverse. Both are built once and reused across all iterations; only
	// the role references below swap.
	pingScene, err := buildStitchingScene(settings, ctx.pong, seamsModel)
	if err != nil {
		return err
	}
	pongScene, err := buildStitchingScene(settings, ctx.ping, seamsModel)
	if err != nil {
		return err
	}
	pingView := buildStitchingView(pingScene, renderPath, ctx.ping)
	pongView := buildStitchingView(pongScene, renderPath, ctx.pong)

	if err := backend.BeginFrame(); err != nil {
		logger.Error("failed to begin lightmap seam stitching frame", zap.Error(err))
		return fmt.Errorf("beginning stitching frame: %w", err)
	}

	// Pong starts as current: it receives the upload and is what the ping
	// view samples on the first iteration.
	currentTexture, swapTexture := ctx.pong, ctx.ping
	currentView, swapView := pingView, pongView

	if err := backend.UploadTexture(currentTexture, buf); err != nil {
		backend.EndFrame()
		return fmt.Errorf("uploading lightmap data: %w", err)
	}

	for i := 0; i < settings.NumIterations; i++ {
		if err := backend.RenderView(currentView); err != nil {
			backend.EndFrame()
			return fmt.Errorf("rendering stitch iteration %d: %w", i, err)
		}
		currentTexture, swapTexture = swapTexture, currentTexture
		currentView, swapView = swapView, currentView
	}

	if err := backend.ReadTexture(currentTexture, buf); err != nil {
		backend.EndFrame()
		return fmt.Errorf("reading stitched lightmap data: %w", err)
	}

	backend.EndFrame()
	return nil
}
