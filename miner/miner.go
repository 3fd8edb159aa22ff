// Package miner implements the proof-of-work mining loop: it polls the
// block chain for the newest un-sealed block within the redacted window,
// searches Argon2id pre-images against the block's difficulty mask, and
// broadcasts a solution transaction on success.
//
// The search-loop structure is grounded on the teacher's
// modules/miner.blockForWork pattern (other_examples/.../blockmanager.go)
// and on the truechain minerva.Seal abort-channel idiom
// (other_examples/.../consensus-minerva-sealer.go); threadgroup.ThreadGroup
// plays the role of the teacher's sync.ThreadGroup for graceful shutdown.
package miner

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sagreta86/Ixian-DLT/build"
	"github.com/sagreta86/Ixian-DLT/config"
	"github.com/sagreta86/Ixian-DLT/external"
	"github.com/sagreta86/Ixian-DLT/internal/threadgroup"
	"github.com/sagreta86/Ixian-DLT/types"
)

// State is a miner thread's position in its state machine.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateSolving
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateSolving:
		return "solving"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Miner drives the mining loop against an external block chain and
// protocol layer. It holds no state shared with other Miner instances: a
// future multi-threaded miner would shard on nonce alphabet rather than
// share a Miner value (spec §5).
type Miner struct {
	chain     external.BlockChain
	processor external.BlockProcessor
	wallet    external.WalletStorage
	protocol  external.ProtocolMessage
	log       external.Logger
	clock     external.Clock
	cfg       config.Config

	rngMu sync.Mutex
	rng   *rngSource

	mu          sync.Mutex
	state       State
	activeBlock types.Block

	attempts   uint64 // atomic
	lastStatus time.Time

	tg threadgroup.ThreadGroup
}

// rngSource is a tiny indirection so tests can substitute a deterministic
// generator; New always constructs the per-instance seeded variant.
type rngSource = seededGenerator

// New constructs a Miner. Each instance seeds its own nonce generator at
// construction time (spec §9): no two Miner instances ever share an RNG.
func New(chain external.BlockChain, processor external.BlockProcessor, wallet external.WalletStorage, protocol external.ProtocolMessage, log external.Logger, clock external.Clock, cfg config.Config) *Miner {
	if log == nil {
		log = noopLogger{}
	}
	if clock == nil {
		clock = external.SystemClock{}
	}
	return &Miner{
		chain:     chain,
		processor: processor,
		wallet:    wallet,
		protocol:  protocol,
		log:       log,
		clock:     clock,
		cfg:       cfg,
		rng:       newSeededGenerator(),
		state:     StateIdle,
	}
}

type noopLogger struct{}

func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

// State returns the miner's current state machine position.
func (m *Miner) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// HashesPerSecond returns the number of Argon2id attempts since the
// statistics counter was last reset, which happens on every status print.
func (m *Miner) HashesPerSecond() uint64 {
	return atomic.LoadUint64(&m.attempts)
}

// Start spawns the mining loop as a background goroutine. If the node's
// configuration disables mining, Start logs and returns immediately
// without starting a goroutine — the mining algorithm itself is otherwise
// unmodified and remains the canonical behavior (spec §9's open
// question).
func (m *Miner) Start() error {
	if m.cfg.DisableMiner {
		m.log.Warnf("mining is disabled by configuration")
		return nil
	}
	if err := m.tg.Add(); err != nil {
		return err
	}
	go func() {
		defer m.tg.Done()
		m.run()
	}()
	return nil
}

// Stop signals the mining loop to halt and blocks until it has. It honors
// an in-progress Argon2id call; there is no hard preemption of a hash in
// flight (spec §5).
func (m *Miner) Stop() error {
	err := m.tg.Stop()
	m.mu.Lock()
	m.state = StateStopped
	m.mu.Unlock()
	return err
}

func (m *Miner) run() {
	stop := m.tg.StopChan()
	m.lastStatus = m.clock.Now()
	for {
		select {
		case <-stop:
			return
		default:
		}
		m.tick(stop)
	}
}

// tick runs exactly one iteration of the state machine, described in spec
// §4.2.
func (m *Miner) tick(stop <-chan struct{}) {
	m.mu.Lock()
	state := m.state
	m.mu.Unlock()

	switch state {
	case StateIdle:
		if m.processor.Operating() && m.chain.LastBlockNum() >= config.MinMineableBlockNum {
			m.setState(StateSearching)
			return
		}
		sleep(stop, config.IdleSleep)
	case StateSearching:
		b, ok := findUnsealedBlock(m.chain, m.chain.LastBlockNum(), m.cfg.RedactedWindowSize)
		if !ok {
			m.setState(StateIdle)
			sleep(stop, config.IdleSleep)
			return
		}
		m.mu.Lock()
		m.activeBlock = b
		m.state = StateSolving
		m.mu.Unlock()
	case StateSolving:
		m.solveStep()
		m.maybePrintStatus()
	case StateStopped:
		// Terminal; run() will observe the stop channel on the next loop.
	}
}

func (m *Miner) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// solveStep performs a single Argon2id attempt against the active block.
// On success it broadcasts the solution, marks the local copy of the
// block sealed, and returns to Idle so the next tick re-enters Searching.
func (m *Miner) solveStep() {
	m.mu.Lock()
	b := m.activeBlock
	m.mu.Unlock()

	m.rngMu.Lock()
	nonce := generateNonce(m.rng.rand)
	m.rngMu.Unlock()

	solver := m.wallet.Address()
	hashHex := computeHashHex(b.BlockChecksum, solver, nonce)
	atomic.AddUint64(&m.attempts, 1)

	if !Validate(hashHex, b.Difficulty) {
		return
	}

	solution := types.Solution{BlockNum: b.BlockNum, Solver: solver, Nonce: nonce}
	if err := m.broadcastSolution(solution); err != nil {
		m.log.Errorf("%v", build.ExtendErr(fmt.Sprintf("failed to broadcast PoW solution for block %d", solution.BlockNum), err))
	}

	m.mu.Lock()
	m.activeBlock.PowField = []byte(nonce)
	m.state = StateIdle
	m.mu.Unlock()
}

func (m *Miner) broadcastSolution(solution types.Solution) error {
	tx := newPoWSolutionTransaction(solution, m.wallet.PublicKey(), m.clock.Now().Unix())
	payload, err := json.Marshal(tx)
	if err != nil {
		return build.ExtendErr("failed to marshal PoW solution transaction", err)
	}
	return m.protocol.Broadcast(BroadcastCode, payload)
}

func (m *Miner) maybePrintStatus() {
	now := m.clock.Now()
	if now.Sub(m.lastStatus) < config.StatusInterval {
		return
	}
	attempts := atomic.SwapUint64(&m.attempts, 0)
	elapsed := now.Sub(m.lastStatus).Seconds()
	m.lastStatus = now
	if elapsed <= 0 {
		elapsed = 1
	}
	m.log.Infof("mining: %.2f H/s", float64(attempts)/elapsed)
}

// sleep blocks for d or until stop is closed, whichever comes first,
// implementing the Miner's voluntary 1s idle sleep without a hard
// preemption gap (spec §5).
func sleep(stop <-chan struct{}, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-stop:
	}
}
