package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/streakdrawer/assets/layout"
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// RewardUI holds the ebitenui layer of the reward screen: the Reset button
// and the claim counter.
type RewardUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnReset func()

	resetButton  *widget.Button
	counterLabel *widget.Label

	buttonFace text.Face
	labelFace  text.Face

	counterText string
}

// NewRewardUI builds the UI for a resolved screen layout.
func NewRewardUI(screen layout.Screen, onReset func()) (*RewardUI, error) {
	rui := &RewardUI{OnReset: onReset}
	if err := rui.loadFonts(); err != nil {
		return nil, err
	}
	rui.buildUI(screen)
	return rui, nil
}

func (rui *RewardUI) loadFonts() error {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load button font: %w", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}

	// Store as text.Face interface for ebitenui compatibility
	rui.buttonFace = &text.GoTextFace{
		Source: boldSource,
		Size:   14,
	}
	rui.labelFace = &text.GoTextFace{
		Source: regularSource,
		Size:   13,
	}
	return nil
}

func (rui *RewardUI) buildUI(screen layout.Screen) {
	reset := screen.ResetButton
	padding := widget.Insets{
		Top:   int(reset.Y),
		Left:  int(reset.X),
		Right: int(reset.X),
	}

	// Root container stays transparent so the scene shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&padding),
		)),
	)

	rui.resetButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(reset.W), int(reset.H)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(rui.resetButtonImage()),
		widget.ButtonOpts.Text("Reset", &rui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Render.ResetTextColor,
			Hover:   cfg.Render.ResetTextColor,
			Pressed: cfg.Render.ResetTextColor,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(6)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnReset != nil {
				rui.OnReset()
			}
		}),
	)
	rootContainer.AddChild(rui.resetButton)

	rui.counterLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &rui.labelFace, &widget.LabelColor{
			Idle: cfg.Render.CounterTextColor,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionEnd,
					VerticalPosition:   widget.AnchorLayoutPositionStart,
				}),
			),
		),
	)
	rootContainer.AddChild(rui.counterLabel)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *RewardUI) resetButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Render.ResetButtonColor),
		Hover:   image.NewNineSliceColor(cfg.Render.ResetButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Render.ResetButtonPressed),
	}
}

// SetStats updates the claim counter.
func (rui *RewardUI) SetStats(stats reward.Stats) {
	s := CounterText(stats)
	if s == rui.counterText {
		return
	}
	rui.counterText = s
	rui.counterLabel.Label = s
}

// CounterText is the label shown for the given stats.
func CounterText(stats reward.Stats) string {
	if stats.TotalClaims == 0 {
		return "No rewards claimed yet"
	}
	return fmt.Sprintf("%d claimed, %d day streak", stats.TotalClaims, stats.Streak)
}

func (rui *RewardUI) Update() {
	rui.UI.Update()
}

func (rui *RewardUI) Draw(screen *ebiten.Image) {
	rui.UI.Draw(screen)
}
