package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/rescue_status_engine/internal/config"
	"github.com/shenikar/rescue_status_engine/internal/inference"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Inferrer определяет контракт движка инференса для диспетчера
type Inferrer interface {
	InferPerson(ctx context.Context, personID string) (*inference.Result, error)
}

// PersonLister перечисляет всех людей для периодического полного прохода
type PersonLister interface {
	ListPersonIDs(ctx context.Context) ([]string, error)
}

// Dispatcher сериализует пересчеты статуса: на одного человека в каждый момент
// работает не больше одного прохода инференса, разные люди считаются
// параллельно в пределах пула воркеров. Сбой по одному человеку не
// останавливает обработку остальных.
type Dispatcher struct {
	engine Inferrer
	lister PersonLister
	cfg    config.InferenceConfig
	logger *logrus.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	sem    chan struct{}

	// stopMu закрывает окно между wg.Add в enqueue и wg.Wait в Stop:
	// после выставления stopped новые задачи не принимаются.
	stopMu  sync.RWMutex
	stopped bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDispatcher(engine Inferrer, lister PersonLister, cfg config.InferenceConfig, logger *logrus.Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		engine: engine,
		lister: lister,
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		sem:    make(chan struct{}, cfg.WorkerPoolSize),
		locks:  make(map[string]*sync.Mutex),
	}
}

// OnCallSaved ставит пересчет человека в очередь после сохранения звонка
func (d *Dispatcher) OnCallSaved(personID string) {
	d.enqueue(personID)
}

// OnLocationSaved ставит пересчет человека в очередь после сохранения GPS-точки
func (d *Dispatcher) OnLocationSaved(personID string) {
	d.enqueue(personID)
}

// OnAssignmentChanged ставит в очередь обоих участников назначения
func (d *Dispatcher) OnAssignmentChanged(civilianID, responderID string) {
	d.enqueue(civilianID)
	d.enqueue(responderID)
}

// Start запускает периодический полный проход по всем людям.
// Проход подхватывает переходы, чьи условия стали истинными со временем
// (затухание скорости, накопление окна неподвижности), без новых записей.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.cfg.SweepInterval)
		defer ticker.Stop()

		d.logger.WithFields(logrus.Fields{
			"service":  "dispatcher",
			"interval": d.cfg.SweepInterval,
		}).Info("Periodic inference sweep started")

		for {
			select {
			case <-d.ctx.Done():
				return
			case <-ticker.C:
				if err := d.RunFullSweep(d.ctx); err != nil {
					d.logger.WithError(err).Error("Periodic sweep failed")
				}
			}
		}
	}()
}

// Stop останавливает приём новых задач и дожидается завершения запущенных.
// Триггеры, пришедшие после Stop, игнорируются.
func (d *Dispatcher) Stop() {
	d.stopMu.Lock()
	d.stopped = true
	d.stopMu.Unlock()

	d.cancel()
	d.wg.Wait()
}

// RunFullSweep пересчитывает всех известных людей. Ошибка по отдельному
// человеку логируется и не прерывает проход; ошибкой возвращается только
// невозможность получить список людей.
func (d *Dispatcher) RunFullSweep(ctx context.Context) error {
	ids, err := d.lister.ListPersonIDs(ctx)
	if err != nil {
		return fmt.Errorf("dispatcher: could not list persons for sweep: %w", err)
	}

	g := new(errgroup.Group)
	g.SetLimit(d.cfg.WorkerPoolSize)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			d.inferOne(ctx, id)
			return nil
		})
	}
	return g.Wait()
}

// enqueue запускает пересчет человека в фоне, не блокируя вызывающего.
// RLock держится на время wg.Add: Stop не может начать wg.Wait между
// проверкой stopped и регистрацией задачи.
func (d *Dispatcher) enqueue(personID string) {
	d.stopMu.RLock()
	defer d.stopMu.RUnlock()
	if d.stopped {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		select {
		case d.sem <- struct{}{}:
		case <-d.ctx.Done():
			return
		}
		defer func() { <-d.sem }()
		d.inferOne(d.ctx, personID)
	}()
}

func (d *Dispatcher) inferOne(ctx context.Context, personID string) {
	log := d.logger.WithFields(logrus.Fields{
		"service":   "dispatcher",
		"person_id": personID,
	})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Recovered from panic in inference task")
		}
	}()

	lock := d.personLock(personID)
	lock.Lock()
	defer lock.Unlock()

	result, err := d.engine.InferPerson(ctx, personID)
	if err != nil {
		log.WithError(err).Warn("Inference pass failed")
		return
	}

	// Побочные эффекты прохода (авто-завершение назначения) требуют пересчета
	// второго участника. Его мьютекс нельзя брать под своим — только новой задачей.
	for _, followUp := range result.FollowUps {
		d.enqueue(followUp)
	}
}

// personLock возвращает мьютекс человека, создавая его при первом обращении.
// Записи не вытесняются: карта растет до числа различных людей в системе,
// по одному мьютексу на человека.
func (d *Dispatcher) personLock(personID string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	lock, ok := d.locks[personID]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[personID] = lock
	}
	return lock
}
