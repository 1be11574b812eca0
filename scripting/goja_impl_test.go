package scripting

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProxy struct {
	text string
	x, y float64
}

func (p *stubProxy) GetText() string                 { return p.text }
func (p *stubProxy) SetText(text string)             { p.text = text }
func (p *stubProxy) GetPosition() (float64, float64) { return p.x, p.y }
func (p *stubProxy) SetPosition(xMm, yMm float64)    { p.x, p.y = xMm, yMm }

type stubDOM struct {
	pages      int
	active     int
	addedTexts []string
	alerts     []string
	proxy      *stubProxy
}

func (d *stubDOM) PageCount() int       { return d.pages }
func (d *stubDOM) ActivePageIndex() int { return d.active }

func (d *stubDOM) SetActivePage(index int) bool {
	if index < 0 || index >= d.pages {
		return false
	}
	d.active = index
	return true
}

func (d *stubDOM) AddText(text string, xMm, yMm, widthMm, heightMm float64) string {
	d.addedTexts = append(d.addedTexts, text)
	return "text-id"
}

func (d *stubDOM) AddFormula(latex string, xMm, yMm, widthMm, heightMm float64) string {
	return "formula-id"
}

func (d *stubDOM) GetElement(id string) ElementProxy {
	if d.proxy == nil {
		return nil
	}
	return d.proxy
}

func (d *stubDOM) Alert(message string) { d.alerts = append(d.alerts, message) }

func TestGojaEngine_ExecuteReturnsValue(t *testing.T) {
	engine := NewEngine()
	res, err := engine.Execute(context.Background(), `1 + 2`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if n, ok := res.(int64); !ok || n != 3 {
		t.Fatalf("result = %v (%T), want 3", res, res)
	}
}

func TestGojaEngine_DOMRoundTrip(t *testing.T) {
	dom := &stubDOM{pages: 3, proxy: &stubProxy{text: "hi"}}
	engine := NewEngine()
	if err := engine.RegisterDOM(dom); err != nil {
		t.Fatalf("register dom: %v", err)
	}

	res, err := engine.Execute(context.Background(), `
		setActivePage(2);
		addText("scripted", 1, 2, 3, 4);
		var el = getElement("any");
		el.text = el.text + "!";
		app.alert(el.text);
		pageCount();
	`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if n, ok := res.(int64); !ok || n != 3 {
		t.Fatalf("pageCount = %v, want 3", res)
	}
	if dom.active != 2 {
		t.Fatalf("active = %d, want 2", dom.active)
	}
	if len(dom.addedTexts) != 1 || dom.addedTexts[0] != "scripted" {
		t.Fatalf("added texts = %v", dom.addedTexts)
	}
	if dom.proxy.text != "hi!" {
		t.Fatalf("proxy text = %q, want hi!", dom.proxy.text)
	}
	if len(dom.alerts) != 1 || dom.alerts[0] != "hi!" {
		t.Fatalf("alerts = %v", dom.alerts)
	}
}

func TestGojaEngine_SetActivePageOutOfRange(t *testing.T) {
	dom := &stubDOM{pages: 1}
	engine := NewEngine()
	if err := engine.RegisterDOM(dom); err != nil {
		t.Fatalf("register dom: %v", err)
	}
	res, err := engine.Execute(context.Background(), `setActivePage(5)`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res != false {
		t.Fatalf("setActivePage(5) = %v, want false", res)
	}
	if dom.active != 0 {
		t.Fatalf("active = %d, want unchanged 0", dom.active)
	}
}

func TestGojaEngine_ContextCancellationInterrupts(t *testing.T) {
	engine := NewEngine()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := engine.Execute(ctx, `while (true) {}`)
	if err == nil {
		t.Fatal("expected an interrupt error from a cancelled context")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("interrupt took %v, script was not stopped promptly", elapsed)
	}
}
