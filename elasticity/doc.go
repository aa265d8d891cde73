// Package elasticity estimates the crime-investment elasticity coefficient
// ε per region from historical crime-rate series.
//
// The model is a simple linear regression of year-over-year percentage
// change in crime rate against the percentage change of an investment
// proxy:
//
//	Δcrime% = α + ε·Δproxy% + residual
//
// ε < 0 means additional investment reduces crime; the allocation
// optimizer rewards exactly that case. The fit-quality score is R².
//
// Where true budget histories are missing, the default TrendProxy stands
// in with the region's own rate series lagged by one year. The proxy is a
// pluggable strategy (ProxySource): substituting a genuine investment
// series touches no regression logic.
//
// The package also carries the shared linear trend fit (rate ~ year) used
// by the backtester to project test horizons.
//
// Everything here is a pure function over immutable inputs; recomputation
// after a series change simply produces a new Result.
package elasticity
