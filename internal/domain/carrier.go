package domain

// Carrier identifies one of the supported cross-border carriers.
// The set is fixed: a new carrier is a code change plus a tariff entry,
// never a runtime plugin.
type Carrier string

const (
	Carrier4PX          Carrier = "4PX"
	CarrierYunExpress   Carrier = "YunExpress"
	CarrierYanwen       Carrier = "Yanwen"
	CarrierCainiao      Carrier = "Cainiao"
	CarrierDHLECommerce Carrier = "DHL_eCommerce"
	CarrierUBI          Carrier = "UBI"
	CarrierChinaPost    Carrier = "ChinaPost"
	CarrierEMS          Carrier = "EMS"
	CarrierFedEx        Carrier = "FedEx"
	CarrierUPS          Carrier = "UPS"
	CarrierSFExpress    Carrier = "SF_Express"
	CarrierJCEX         Carrier = "JCEX"
)

// CanonicalCarrierOrder is the fixed ordering used as the final tie-break
// when ranking quotes, so equal-price equal-speed results are stable across
// calls and across processes.
var CanonicalCarrierOrder = []Carrier{
	Carrier4PX,
	CarrierYunExpress,
	CarrierYanwen,
	CarrierCainiao,
	CarrierDHLECommerce,
	CarrierUBI,
	CarrierChinaPost,
	CarrierEMS,
	CarrierFedEx,
	CarrierUPS,
	CarrierSFExpress,
	CarrierJCEX,
}

var carrierRank = func() map[Carrier]int {
	m := make(map[Carrier]int, len(CanonicalCarrierOrder))
	for i, c := range CanonicalCarrierOrder {
		m[c] = i
	}
	return m
}()

// CanonicalRank returns the carrier's position in the canonical order.
// Unknown carriers sort after every known one.
func CanonicalRank(c Carrier) int {
	if r, ok := carrierRank[c]; ok {
		return r
	}
	return len(CanonicalCarrierOrder)
}

// IsKnown reports whether c is a member of the fixed carrier set.
func (c Carrier) IsKnown() bool {
	_, ok := carrierRank[c]
	return ok
}
