package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"radioreg/internal/config"
	"radioreg/internal/database"
	"radioreg/internal/domain"
	"radioreg/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM station_maintenance")
	db.Exec("DELETE FROM stations")
	db.Exec("DELETE FROM employees")

	ctx := context.Background()
	employees := repository.NewEmployeeRepository(db)
	stations := repository.NewStationRepository(db)
	journal := repository.NewMaintenanceRepository(db)

	// ================== EMPLOYEES ==================
	log.Println("Creating employees...")
	for i, e := range []domain.Employee{
		{TabelNumber: "1001", LastName: "Рахимов", FirstName: "Фаррух", Patronymic: "Саидович",
			Region: domain.RegionRRP, HireDate: "2019-03-12", Position: "Инженер связи"},
		{TabelNumber: "1002", LastName: "Назаров", FirstName: "Далер", Patronymic: "Умедович",
			Region: domain.RegionVMKB, HireDate: "2021-07-01", Position: "Техник"},
		{TabelNumber: "1003", LastName: "Каримова", FirstName: "Мадина", Patronymic: "Алишеровна",
			Region: domain.RegionDushanbe, HireDate: "2023-01-20", Position: "Диспетчер"},
	} {
		e.Phone = fmt.Sprintf("+992 93 500 01%02d", i+1)
		if _, err := employees.Add(ctx, &e); err != nil {
			log.Fatal("seed employee: ", err)
		}
	}

	// ================== STATIONS ==================
	log.Println("Creating stations...")
	seedStations := []domain.Station{
		{Name: "БС Варзоб", Location: "перевал Варзоб", Type: domain.StationBase,
			Frequency: "163.250 / 167.450", Power: "25 Вт", Status: domain.StatusActive,
			Region: domain.RegionRRP, Contact: "Рахимов Ф."},
		{Name: "РТ Анзоб", Location: "тоннель Анзоб, портал", Type: domain.StationRepeater,
			Frequency: "161.075", Power: "10 Вт", Status: domain.StatusUnderMaintenance,
			Region: domain.RegionRRP, Contact: "Назаров Д."},
		{Name: "БС Хорог", Location: "г. Хорог", Type: domain.StationBase,
			Frequency: "163.250", Power: "25 Вт", Status: domain.StatusActive,
			Region: domain.RegionVMKB},
		{Name: "БС Куляб", Location: "г. Куляб", Type: domain.StationBase,
			Frequency: "167.450", Power: "40 Вт", Status: domain.StatusInactive,
			Region: domain.RegionRUHO, Notes: "ожидает замены антенны"},
		{Name: "МС Резерв-1", Location: "склад, Душанбе", Type: domain.StationMobile,
			Frequency: "163.250", Power: "5 Вт", Status: domain.StatusReserve,
			Region: domain.RegionDushanbe},
	}
	ids := make(map[string]int64, len(seedStations))
	for i := range seedStations {
		id, err := stations.Add(ctx, &seedStations[i])
		if err != nil {
			log.Fatal("seed station: ", err)
		}
		ids[seedStations[i].Name] = id
	}

	// ================== MAINTENANCE JOURNAL ==================
	log.Println("Creating maintenance records...")
	today := time.Now().Format(domain.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	for _, rec := range []domain.MaintenanceRecord{
		{StationID: ids["РТ Анзоб"], Date: today, Type: domain.MaintenanceRepair,
			Parts: "дуплексер", Notes: "Проведены работы: Ремонт", UserLabel: "Администратор"},
		{StationID: ids["БС Варзоб"], Date: today, Type: domain.MaintenanceService,
			Notes: "Проведены работы: Обслуживание", UserLabel: "Администратор"},
		{StationID: ids["БС Хорог"], Date: yesterday, Type: domain.MaintenanceService,
			Notes: "Проведены работы: Обслуживание", UserLabel: "Администратор"},
	} {
		if err := journal.Add(ctx, &rec); err != nil {
			log.Fatal("seed maintenance: ", err)
		}
	}

	log.Println("Seed complete.")
	log.Printf("employees: 3, stations: %d, maintenance records: 3", len(seedStations))
}
