package sync

import (
	"context"
	"strconv"

	"github.com/jdifek/fitziz-adminka/internal/client/api"
	"github.com/jdifek/fitziz-adminka/internal/features/mask/models"
)

// MaskDraft содержит форму маски: все поля текстовые, как в оригинальной
// админке; числа парсятся только при отправке.
type MaskDraft struct {
	Model                 string
	FullName              string
	Article               string
	ImageURL              string
	ViewWindowSize        string
	VisibleArea           string
	SensorsCount          string
	ShadeLevel            string
	LightState            string
	WeldingTypes          string
	ResponseTime          string
	OperatingTemp         string
	ShadeAdjustment       string
	BatteryIndicator      string
	SensitivityAdjustment string
	DelayAdjustment       string
	TestButton            string
	HDColorTech           string
	GradientFunction      string
	MemoryModes           string
	OpticalClass          string
	Headband              string
	Body                  string
	SFireProtection       string
	Weight                string
	RetailPrice           string
	PackageHeight         string
	PackageWidth          string
	PackageLength         string
	Extra                 []models.KeyValue
}

// DraftFromMask строит форму из сохраненной маски. Доп. характеристики
// с известными ключами раскладываются по выделенным полям формы,
// остальные попадают в Extra.
func DraftFromMask(mask *models.Mask) MaskDraft {
	d := MaskDraft{
		Model:           mask.Name,
		FullName:        deref(mask.Instructions),
		Article:         deref(mask.Description),
		ImageURL:        deref(mask.ImageURL),
		VisibleArea:     deref(mask.ViewArea),
		ShadeLevel:      deref(mask.ShadeRange),
		LightState:      deref(mask.Power),
		WeldingTypes:    deref(mask.WeldingTypes),
		OperatingTemp:   deref(mask.OperatingTemp),
		Body:            deref(mask.Material),
		SFireProtection: deref(mask.SFireProtection),
		Weight:          deref(mask.Weight),
		RetailPrice:     deref(mask.Price),
		PackageHeight:   deref(mask.PackageHeight),
		PackageWidth:    deref(mask.PackageWidth),
		PackageLength:   deref(mask.PackageLength),
	}
	if mask.Sensors != nil {
		d.SensorsCount = strconv.Itoa(*mask.Sensors)
	}

	for _, field := range mask.ExtraFields {
		switch field.Key {
		case models.KeyViewWindowSize:
			d.ViewWindowSize = field.Value
		case models.KeyResponseTime:
			d.ResponseTime = field.Value
		case models.KeyShadeAdjustment:
			d.ShadeAdjustment = field.Value
		case models.KeyBatteryIndicator:
			d.BatteryIndicator = field.Value
		case models.KeySensitivityAdjustment:
			d.SensitivityAdjustment = field.Value
		case models.KeyDelayAdjustment:
			d.DelayAdjustment = field.Value
		case models.KeyTestButton:
			d.TestButton = field.Value
		case models.KeyHDColor:
			d.HDColorTech = field.Value
		case models.KeyGradient:
			d.GradientFunction = field.Value
		case models.KeyMemoryModes:
			d.MemoryModes = field.Value
		case models.KeyOpticalClass:
			d.OpticalClass = field.Value
		case models.KeyHeadband:
			d.Headband = field.Value
		default:
			d.Extra = append(d.Extra, models.KeyValue{Key: field.Key, Value: field.Value})
		}
	}
	return d
}

// Payload превращает форму в payload админки. Ошибка парсинга числа
// отклоняет отправку целиком.
func (d MaskDraft) Payload() (*models.MaskPayload, error) {
	sensors, err := OptionalInt("sensorsCount", d.SensorsCount)
	if err != nil {
		return nil, err
	}

	return &models.MaskPayload{
		Model:                 d.Model,
		FullName:              d.FullName,
		Article:               d.Article,
		ImageURL:              d.ImageURL,
		ViewWindowSize:        d.ViewWindowSize,
		VisibleArea:           d.VisibleArea,
		SensorsCount:          sensors,
		ShadeLevel:            d.ShadeLevel,
		LightState:            d.LightState,
		WeldingTypes:          d.WeldingTypes,
		ResponseTime:          d.ResponseTime,
		OperatingTemp:         d.OperatingTemp,
		ShadeAdjustment:       d.ShadeAdjustment,
		BatteryIndicator:      d.BatteryIndicator,
		SensitivityAdjustment: d.SensitivityAdjustment,
		DelayAdjustment:       d.DelayAdjustment,
		TestButton:            d.TestButton,
		HDColorTech:           d.HDColorTech,
		GradientFunction:      d.GradientFunction,
		MemoryModes:           d.MemoryModes,
		OpticalClass:          d.OpticalClass,
		Headband:              d.Headband,
		Body:                  d.Body,
		SFireProtection:       d.SFireProtection,
		Weight:                d.Weight,
		RetailPrice:           d.RetailPrice,
		PackageHeight:         d.PackageHeight,
		PackageWidth:          d.PackageWidth,
		PackageLength:         d.PackageLength,
		ExtraFields:           d.Extra,
	}, nil
}

// NewMaskController собирает контроллер масок поверх REST-клиента.
func NewMaskController(client *api.Client, reporter *Reporter) *Controller[int, *models.Mask, MaskDraft] {
	return NewController("mask", Ops[int, *models.Mask, MaskDraft]{
		Fetch: client.ListMasks,
		Create: func(ctx context.Context, form MaskDraft) error {
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			_, err = client.CreateMask(ctx, payload)
			return err
		},
		Update: func(ctx context.Context, id int, form MaskDraft) error {
			payload, err := form.Payload()
			if err != nil {
				return err
			}
			_, err = client.UpdateMask(ctx, id, payload)
			return err
		},
		Delete: client.DeleteMask,
		Draft:  DraftFromMask,
		IDOf:   func(m *models.Mask) int { return m.ID },
	}, reporter)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
