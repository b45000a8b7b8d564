// Package sync повторяет цикл работы админки с коллекциями: загрузить
// все целиком, отредактировать через форму, отправить, перезагрузить.
package sync

import "context"

// Ops объединяет операции одной сущности, которыми управляет Controller.
type Ops[ID comparable, Item, Form any] struct {
	Fetch  func(ctx context.Context) ([]Item, error)
	Create func(ctx context.Context, form Form) error
	Update func(ctx context.Context, id ID, form Form) error
	Delete func(ctx context.Context, id ID) error
	// Draft строит форму из существующего элемента для редактирования.
	Draft func(item Item) Form
	// IDOf извлекает идентификатор элемента.
	IDOf func(item Item) ID
}

// Controller хранит кэш элементов одной коллекции, текущую форму и
// признак редактирования. После каждой успешной мутации коллекция
// перечитывается целиком, источником истины остается сервер.
//
// Не потокобезопасен: контроллером владеет один цикл событий.
type Controller[ID comparable, Item, Form any] struct {
	entity   string
	ops      Ops[ID, Item, Form]
	reporter *Reporter

	items     []Item
	form      Form
	editingID *ID
}

func NewController[ID comparable, Item, Form any](entity string, ops Ops[ID, Item, Form], reporter *Reporter) *Controller[ID, Item, Form] {
	return &Controller[ID, Item, Form]{entity: entity, ops: ops, reporter: reporter}
}

// Items возвращает кэш последней успешной загрузки.
func (c *Controller[ID, Item, Form]) Items() []Item { return c.items }

func (c *Controller[ID, Item, Form]) Form() Form { return c.form }

func (c *Controller[ID, Item, Form]) SetForm(form Form) { c.form = form }

// EditingID возвращает id редактируемого элемента либо nil.
func (c *Controller[ID, Item, Form]) EditingID() *ID { return c.editingID }

// FetchAll перечитывает коллекцию. При ошибке кэш не трогается.
func (c *Controller[ID, Item, Form]) FetchAll(ctx context.Context) error {
	items, err := c.ops.Fetch(ctx)
	if err != nil {
		c.report(OpFetch, err)
		return err
	}
	c.items = items
	c.report(OpFetch, nil)
	return nil
}

// Submit отправляет форму: обновление, если идет редактирование,
// иначе создание. Успех сбрасывает форму и перечитывает коллекцию;
// ошибка оставляет форму и режим редактирования нетронутыми.
func (c *Controller[ID, Item, Form]) Submit(ctx context.Context) error {
	op := OpCreate
	var err error
	if c.editingID != nil {
		op = OpUpdate
		err = c.ops.Update(ctx, *c.editingID, c.form)
	} else {
		err = c.ops.Create(ctx, c.form)
	}
	if err != nil {
		c.report(op, err)
		return err
	}
	c.report(op, nil)

	var empty Form
	c.form = empty
	c.editingID = nil
	return c.FetchAll(ctx)
}

// BeginEdit переводит форму в режим редактирования элемента.
func (c *Controller[ID, Item, Form]) BeginEdit(item Item) {
	c.form = c.ops.Draft(item)
	id := c.ops.IDOf(item)
	c.editingID = &id
}

// CancelEdit сбрасывает форму и выходит из режима редактирования.
func (c *Controller[ID, Item, Form]) CancelEdit() {
	var empty Form
	c.form = empty
	c.editingID = nil
}

// Delete удаляет элемент и перечитывает коллекцию.
func (c *Controller[ID, Item, Form]) Delete(ctx context.Context, id ID) error {
	if err := c.ops.Delete(ctx, id); err != nil {
		c.report(OpDelete, err)
		return err
	}
	c.report(OpDelete, nil)
	return c.FetchAll(ctx)
}

func (c *Controller[ID, Item, Form]) report(op Op, err error) {
	if c.reporter != nil {
		c.reporter.Report(Result{Op: op, Entity: c.entity, Err: err})
	}
}
