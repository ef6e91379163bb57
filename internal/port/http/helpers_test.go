package http

import (
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
)

type testLogger struct{}

func (l *testLogger) Debug(args ...interface{})                   {}
func (l *testLogger) Debugf(template string, args ...interface{}) {}
func (l *testLogger) Info(args ...interface{})                    {}
func (l *testLogger) Infof(template string, args ...interface{})  {}
func (l *testLogger) Warn(args ...interface{})                    {}
func (l *testLogger) Warnf(template string, args ...interface{})  {}
func (l *testLogger) Error(args ...interface{})                   {}
func (l *testLogger) Errorf(template string, args ...interface{}) {}
func (l *testLogger) Fatal(args ...interface{})                   {}
func (l *testLogger) Fatalf(template string, args ...interface{}) {}
func (l *testLogger) With(args ...interface{}) logger.Logger      { return l }

func noOpLogger() logger.Logger {
	return &testLogger{}
}
