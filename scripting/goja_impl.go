package scripting

import (
	"context"

	"github.com/dop251/goja"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) RegisterDOM(dom EditorDOM) error {
	// Expose 'app' object
	appObj := e.vm.NewObject()
	err := appObj.Set("alert", func(call goja.FunctionCall) goja.Value {
		msg := ""
		if len(call.Arguments) > 0 {
			msg = call.Arguments[0].String()
		}
		dom.Alert(msg)
		return goja.Undefined()
	})
	if err != nil {
		return err
	}
	if err := e.vm.Set("app", appObj); err != nil {
		return err
	}

	// Expose poster methods globally (as if 'this' is the document)
	if err := e.vm.Set("pageCount", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(dom.PageCount())
	}); err != nil {
		return err
	}

	if err := e.vm.Set("activePage", func(goja.FunctionCall) goja.Value {
		return e.vm.ToValue(dom.ActivePageIndex())
	}); err != nil {
		return err
	}

	if err := e.vm.Set("setActivePage", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return e.vm.ToValue(false)
		}
		return e.vm.ToValue(dom.SetActivePage(int(call.Arguments[0].ToInteger())))
	}); err != nil {
		return err
	}

	if err := e.vm.Set("addText", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 5 {
			return goja.Undefined()
		}
		id := dom.AddText(
			call.Arguments[0].String(),
			call.Arguments[1].ToFloat(),
			call.Arguments[2].ToFloat(),
			call.Arguments[3].ToFloat(),
			call.Arguments[4].ToFloat(),
		)
		return e.vm.ToValue(id)
	}); err != nil {
		return err
	}

	if err := e.vm.Set("addFormula", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 5 {
			return goja.Undefined()
		}
		id := dom.AddFormula(
			call.Arguments[0].String(),
			call.Arguments[1].ToFloat(),
			call.Arguments[2].ToFloat(),
			call.Arguments[3].ToFloat(),
			call.Arguments[4].ToFloat(),
		)
		return e.vm.ToValue(id)
	}); err != nil {
		return err
	}

	return e.vm.Set("getElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		proxy := dom.GetElement(call.Arguments[0].String())
		if proxy == nil {
			return goja.Null()
		}

		obj := e.vm.NewObject()
		obj.DefineAccessorProperty("text",
			e.vm.ToValue(func(goja.FunctionCall) goja.Value {
				return e.vm.ToValue(proxy.GetText())
			}),
			e.vm.ToValue(func(call goja.FunctionCall) goja.Value {
				if len(call.Arguments) > 0 {
					proxy.SetText(call.Arguments[0].String())
				}
				return goja.Undefined()
			}),
			goja.FLAG_TRUE, // Configurable
			goja.FLAG_TRUE, // Enumerable
		)
		obj.Set("move", func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) >= 2 {
				proxy.SetPosition(call.Arguments[0].ToFloat(), call.Arguments[1].ToFloat())
			}
			return goja.Undefined()
		})
		return obj
	})
}
