package service

import "stars-converter/internal/core/ports"

type nopMetrics struct{}

func (nopMetrics) ObserveRateFetch(string)        {}
func (nopMetrics) SetTokenRate(float64)           {}
func (nopMetrics) ObserveOverflow(string)         {}
func (nopMetrics) ObserveConversion(string, bool) {}

func metricsOrNop(m ports.Metrics) ports.Metrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
