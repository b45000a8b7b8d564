package models

// ExtraField представляет свободную пару ключ/значение, прикрепленную к маске.
type ExtraField struct {
	ID     int    `json:"id"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	MaskID int    `json:"maskId"`
}

// KeyValue содержит пару ключ/значение в payload админки (без id).
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Mask описывает карточку сварочной маски в том виде, в котором ее отдает API.
// Имя поля ExtraField в JSON сохранено из исторического формата.
type Mask struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Instructions    *string      `json:"instructions"`
	Description     *string      `json:"description"`
	ImageURL        *string      `json:"imageUrl"`
	Price           *string      `json:"price"`
	Weight          *string      `json:"weight"`
	ViewArea        *string      `json:"viewArea"`
	Sensors         *int         `json:"sensors"`
	Power           *string      `json:"power"`
	ShadeRange      *string      `json:"shadeRange"`
	Material        *string      `json:"material"`
	Installment     *string      `json:"installment"`
	Size            *string      `json:"size"`
	Days            *string      `json:"days"`
	OperatingTemp   *string      `json:"operatingTemp"`
	WeldingTypes    *string      `json:"weldingTypes"`
	SFireProtection *string      `json:"sFireProtection"`
	PackageHeight   *string      `json:"packageHeight"`
	PackageWidth    *string      `json:"packageWidth"`
	PackageLength   *string      `json:"packageLength"`
	ExtraFields     []ExtraField `json:"ExtraField"`
}

// MaskPayload содержит плоский набор полей формы админки.
// Поля именованы так, как их отправляла историческая форма.
type MaskPayload struct {
	Model                 string     `json:"model"`
	FullName              string     `json:"fullName"`
	Article               string     `json:"article"`
	ImageURL              string     `json:"imageUrl"`
	ViewWindowSize        string     `json:"viewWindowSize"`
	VisibleArea           string     `json:"visibleArea"`
	SensorsCount          *int       `json:"sensorsCount"`
	ShadeLevel            string     `json:"shadeLevel"`
	LightState            string     `json:"lightState"`
	WeldingTypes          string     `json:"weldingTypes"`
	ResponseTime          string     `json:"responseTime"`
	OperatingTemp         string     `json:"operatingTemp"`
	ShadeAdjustment       string     `json:"shadeAdjustment"`
	BatteryIndicator      string     `json:"batteryIndicator"`
	SensitivityAdjustment string     `json:"sensitivityAdjustment"`
	DelayAdjustment       string     `json:"delayAdjustment"`
	TestButton            string     `json:"testButton"`
	HDColorTech           string     `json:"hdColorTech"`
	GradientFunction      string     `json:"gradientFunction"`
	MemoryModes           string     `json:"memoryModes"`
	OpticalClass          string     `json:"opticalClass"`
	Headband              string     `json:"headband"`
	Body                  string     `json:"body"`
	SFireProtection       string     `json:"sFireProtection"`
	Weight                string     `json:"weight"`
	RetailPrice           string     `json:"retailPrice"`
	PackageHeight         string     `json:"packageHeight"`
	PackageWidth          string     `json:"packageWidth"`
	PackageLength         string     `json:"packageLength"`
	ExtraFields           []KeyValue `json:"extraFields"`
}

// Известные ключи доп. характеристик. Значения под этими ключами живут
// в extra_fields, но в форме админки показываются отдельными полями и
// исключаются из общего списка доп. характеристик. Набор ключей:
// данные конфигурации, унаследованные от исторической админки;
// не расширять без согласования с контентом каталога.
const (
	KeyViewWindowSize        = "Размер смотрового окна"
	KeyResponseTime          = "Время срабатывания"
	KeyShadeAdjustment       = "Регулировка затемнения"
	KeyBatteryIndicator      = "Индикатор батареи"
	KeySensitivityAdjustment = "Регулировка чувствительности"
	KeyDelayAdjustment       = "Регулировка времени задержки"
	KeyTestButton            = "Кнопка тест"
	KeyHDColor               = "HD COLOR"
	KeyGradient              = "GRADIENT"
	KeyMemoryModes           = "Память режимов"
	KeyOpticalClass          = "Оптический класс"
	KeyHeadband              = "Оголовье"
)

// KnownExtraKeys перечисляет ключи в порядке полей формы.
var KnownExtraKeys = []string{
	KeyViewWindowSize,
	KeyResponseTime,
	KeyShadeAdjustment,
	KeyBatteryIndicator,
	KeySensitivityAdjustment,
	KeyDelayAdjustment,
	KeyTestButton,
	KeyHDColor,
	KeyGradient,
	KeyMemoryModes,
	KeyOpticalClass,
	KeyHeadband,
}

// KnownExtraValues возвращает значения известных ключей из payload
// в порядке KnownExtraKeys.
func (p *MaskPayload) KnownExtraValues() []KeyValue {
	return []KeyValue{
		{Key: KeyViewWindowSize, Value: p.ViewWindowSize},
		{Key: KeyResponseTime, Value: p.ResponseTime},
		{Key: KeyShadeAdjustment, Value: p.ShadeAdjustment},
		{Key: KeyBatteryIndicator, Value: p.BatteryIndicator},
		{Key: KeySensitivityAdjustment, Value: p.SensitivityAdjustment},
		{Key: KeyDelayAdjustment, Value: p.DelayAdjustment},
		{Key: KeyTestButton, Value: p.TestButton},
		{Key: KeyHDColor, Value: p.HDColorTech},
		{Key: KeyGradient, Value: p.GradientFunction},
		{Key: KeyMemoryModes, Value: p.MemoryModes},
		{Key: KeyOpticalClass, Value: p.OpticalClass},
		{Key: KeyHeadband, Value: p.Headband},
	}
}
