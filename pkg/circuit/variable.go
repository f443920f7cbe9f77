package circuit

// varManager maintains the two parallel variable namespaces: circuit
// variables (cv), minted by fresh(), and CNF variables (nv), minted
// lazily the first time the core needs to speak about a cv to the
// backend. The cv<->nv mapping is a partial injection over positive
// ids; translation preserves sign.
type varManager struct {
	nextCV Lit
	nextNV Lit

	cvToNV map[Lit]Lit
	nvToCV map[Lit]Lit
}

func newVarManager() *varManager {
	return &varManager{
		nextCV: 1,
		nextNV: 1,
		cvToNV: make(map[Lit]Lit),
		nvToCV: make(map[Lit]Lit),
	}
}

// fresh mints and returns a new, unused positive circuit variable.
func (vm *varManager) fresh() Lit {
	cv := vm.nextCV
	vm.nextCV++
	return cv
}

// numCVs returns the count of circuit variables minted so far.
func (vm *varManager) numCVs() int {
	return int(vm.nextCV - 1)
}

// cnfOf translates a signed circuit literal to a signed CNF literal,
// minting a fresh nv and binding it to |cv| if this is the first time
// |cv| has been mentioned to the backend. cv must not be 0.
func (vm *varManager) cnfOf(cv Lit) Lit {
	if cv == LitNull {
		panic("circuit: cnfOf(0)")
	}
	v := cv.Var()
	nv, ok := vm.cvToNV[v]
	if !ok {
		nv = vm.nextNV
		vm.nextNV++
		vm.cvToNV[v] = nv
		vm.nvToCV[nv] = v
	}
	if cv.Sign() < 0 {
		return -nv
	}
	return nv
}

// peekCNFOf looks up the CNF variable bound to the positive circuit
// variable cv without allocating one. It returns LitNull if cv has
// never been encoded.
func (vm *varManager) peekCNFOf(cv Lit) Lit {
	if cv <= LitNull {
		panic("circuit: peekCNFOf on a non-positive literal")
	}
	return vm.cvToNV[cv]
}

// cvOf is the inverse of cnfOf's positive half: given a positive nv,
// return the positive cv bound to it, or LitNull if none is bound.
func (vm *varManager) cvOf(nv Lit) Lit {
	return vm.nvToCV[nv]
}

// maxNV returns the highest nv ever allocated.
func (vm *varManager) maxNV() Lit {
	return vm.nextNV - 1
}
