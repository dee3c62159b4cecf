package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one playable level as the menu lists it.
type LevelEntry struct {
	Name string
	Best int
}

// MenuUI is the title menu: level list, direct connect panel and sound toggle.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay        func(index int)
	OnConnect     func(address string)
	OnToggleSound func() bool // returns the new muted state

	ipInput     *widget.TextInput
	portInput   *widget.TextInput
	statusLabel *widget.Label
	soundBtn    *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(levels []LevelEntry, muted bool, onPlay func(int), onConnect func(string), onToggleSound func() bool) *MenuUI {
	ui := &MenuUI{
		OnPlay:        onPlay,
		OnConnect:     onConnect,
		OnToggleSound: onToggleSound,
	}
	ui.loadFonts()
	ui.buildUI(levels, muted)
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *MenuUI) buildUI(levels []LevelEntry, muted bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 24, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("STRETCH", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 80, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, lvl := range levels {
		contentContainer.AddChild(ui.levelButton(i, lvl))
	}

	contentContainer.AddChild(ui.buildDirectConnectPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	ui.soundBtn = ui.button(soundLabel(muted), color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnToggleSound == nil {
			return
		}
		muted := ui.OnToggleSound()
		if textWidget := ui.soundBtn.Text(); textWidget != nil {
			textWidget.Label = soundLabel(muted)
		}
	})
	contentContainer.AddChild(ui.soundBtn)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) levelButton(index int, lvl LevelEntry) *widget.Button {
	label := lvl.Name
	if lvl.Best > 0 {
		label = fmt.Sprintf("%s   best %d", lvl.Name, lvl.Best)
	}
	return ui.button(label, color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnPlay != nil {
			ui.OnPlay(index)
		}
	})
}

func (ui *MenuUI) button(label string, idle color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{idle.R + 20, idle.G + 40, idle.B + 20, 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(280, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(idle),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 30, 40, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *MenuUI) textInput(placeholder string, width int) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (ui *MenuUI) buildDirectConnectPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.ipInput = ui.textInput("localhost", 140)
	panel.AddChild(ui.ipInput)
	ui.portInput = ui.textInput("7373", 70)
	panel.AddChild(ui.portInput)

	connect := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 110, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 140, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 80, 255}),
		}),
		widget.ButtonOpts.Text("Watch", &ui.smallFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnConnect != nil {
				ui.OnConnect(ui.getAddress())
			}
		}),
	)
	panel.AddChild(connect)

	return panel
}

func (ui *MenuUI) getAddress() string {
	host := ui.ipInput.GetText()
	if host == "" {
		host = "localhost"
	}
	port := ui.portInput.GetText()
	if port == "" {
		port = "7373"
	}
	return host + ":" + port
}

func soundLabel(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}

func (ui *MenuUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
