// Package infrastructure adapts zap to the logging interfaces of the
// frameworks and storage engines the service embeds.
package infrastructure

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// FxLoggerAdapter routes fx lifecycle events and printer output to zap as
// structured entries. Routine graph construction is logged at debug level;
// failures are logged at error level with the offending function attached.
type FxLoggerAdapter struct {
	logger *zap.Logger
}

// NewFxLoggerAdapter returns an fxevent.Logger writing to logger.Named("fx").
func NewFxLoggerAdapter(logger *zap.Logger) fxevent.Logger {
	return &FxLoggerAdapter{logger: logger.Named("fx")}
}

// NewFxPrinter returns an fx.Printer writing to logger.Named("fx").
func NewFxPrinter(logger *zap.Logger) fx.Printer {
	return &FxLoggerAdapter{logger: logger.Named("fx")}
}

// LogEvent implements fxevent.Logger.
func (a *FxLoggerAdapter) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		a.logger.Debug("OnStart hook executing",
			zap.String("callee", e.FunctionName), zap.String("caller", e.CallerName))
	case *fxevent.OnStartExecuted:
		a.hookResult("OnStart", e.FunctionName, e.CallerName, e.Runtime.String(), e.Err)
	case *fxevent.OnStopExecuting:
		a.logger.Debug("OnStop hook executing",
			zap.String("callee", e.FunctionName), zap.String("caller", e.CallerName))
	case *fxevent.OnStopExecuted:
		a.hookResult("OnStop", e.FunctionName, e.CallerName, e.Runtime.String(), e.Err)
	case *fxevent.Supplied:
		a.graphResult("supplied", zap.String("type", e.TypeName), e.Err)
	case *fxevent.Provided:
		a.graphResult("provided", zap.Strings("types", e.OutputTypeNames), e.Err)
	case *fxevent.Decorated:
		a.graphResult("decorated", zap.Strings("types", e.OutputTypeNames), e.Err)
	case *fxevent.Invoking:
		a.logger.Debug("invoking", zap.String("function", e.FunctionName))
	case *fxevent.Invoked:
		a.graphResult("invoked", zap.String("function", e.FunctionName), e.Err)
	case *fxevent.Stopping:
		a.logger.Info("received signal", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		a.lifecycleResult("stopped", e.Err)
	case *fxevent.RollingBack:
		a.logger.Error("start failed, rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		a.lifecycleResult("rolled back", e.Err)
	case *fxevent.Started:
		a.lifecycleResult("started", e.Err)
	case *fxevent.LoggerInitialized:
		a.graphResult("logger initialized", zap.String("constructor", e.ConstructorName), e.Err)
	default:
		a.logger.Debug("unhandled fx event", zap.String("event", fmt.Sprintf("%T", event)))
	}
}

// Printf implements fx.Printer.
func (a *FxLoggerAdapter) Printf(format string, args ...any) {
	a.logger.Sugar().Infof(format, args...)
}

func (a *FxLoggerAdapter) hookResult(hook, callee, caller, runtime string, err error) {
	fields := []zap.Field{zap.String("callee", callee), zap.String("caller", caller)}
	if err != nil {
		a.logger.Error(hook+" hook failed", append(fields, zap.Error(err))...)
		return
	}
	a.logger.Debug(hook+" hook executed", append(fields, zap.String("runtime", runtime))...)
}

func (a *FxLoggerAdapter) graphResult(msg string, field zap.Field, err error) {
	if err != nil {
		a.logger.Error(msg+" with error", field, zap.Error(err))
		return
	}
	a.logger.Debug(msg, field)
}

func (a *FxLoggerAdapter) lifecycleResult(msg string, err error) {
	if err != nil {
		a.logger.Error(msg+" with error", zap.Error(err))
		return
	}
	a.logger.Info(msg)
}
