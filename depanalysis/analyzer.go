package depanalysis

import "github.com/dbajgoric/gap2cuda/depmodel"

// Analyze runs the dependence tests over every same-array reference pair
// of a nest's dependence model: each assignment's LHS against every
// later-or-equal assignment's RHS subscripts referencing the same array
// (including its own statement's RHS), and each assignment's LHS against
// every other, distinct assignment's LHS referencing the same array. The
// uniform test runs whenever the two references share a coefficient
// matrix inside a regular (L = U) nest; the general test runs otherwise.
func Analyze(m *depmodel.Model) (tOnS, sOnT []Record, err error) {
	regular := m.L.Equal(m.U)

	for s := range m.Assignments {
		lhsS := m.Assignments[s].LHS

		for t := s; t < len(m.Assignments); t++ {
			distinct := t != s

			for _, rhsT := range m.Assignments[t].RHS {
				if rhsT.Array.Handle() != lhsS.Array.Handle() {
					continue
				}
				ts, st, pairErr := runPair(lhsS, rhsT, m, regular, distinct)
				if pairErr != nil {
					return nil, nil, pairErr
				}
				tOnS = append(tOnS, ts...)
				sOnT = append(sOnT, st...)
			}

			if !distinct {
				continue
			}
			lhsT := m.Assignments[t].LHS
			if lhsT.Array.Handle() != lhsS.Array.Handle() {
				continue
			}
			ts, st, pairErr := runPair(lhsS, lhsT, m, regular, distinct)
			if pairErr != nil {
				return nil, nil, pairErr
			}
			tOnS = append(tOnS, ts...)
			sOnT = append(sOnT, st...)
		}
	}

	return tOnS, sOnT, nil
}

// runPair dispatches to the uniform test when both references share a
// coefficient matrix inside a regular nest, else to the general test.
func runPair(a, b depmodel.SubscriptModel, m *depmodel.Model, regular, distinct bool) (tOnS, sOnT []Record, err error) {
	if regular && a.Coeff.Equal(b.Coeff) {
		return Uniform(a.Coeff, a.Const, b.Const, m.L, m.L0, m.U0, distinct)
	}
	return General(a.Coeff, a.Const, b.Coeff, b.Const, m.L, m.L0, m.U, m.U0, distinct)
}
