package handlers

const (
	textWelcome = "Добро пожаловать! Я бот для расчета нормы воды и калорий. \n" +
		"Введите /help для списка команд."

	textHelp = "Доступные команды:\n" +
		"/start - Начало работы\n" +
		"/set_profile - Настройка профиля пользователя\n" +
		"/log_water - Логирование воды в мл.\n" +
		"/log_food - Логирование съеденных ккал.\n" +
		"/log_workout - Логирование тренировок\n" +
		"/check_progress - Проверить прогресс пользователя\n"

	textNeedProfile = "Сначала настройте профиль с помощью команды /set_profile."

	textWaterUsage = "Пожалуйста, укажите количество воды в мл. Пример: /log_water 250"

	textFoodUsage    = "Пожалуйста, укажите название продукта. Пример: /log_food банан"
	textFoodNotFound = "Не удалось найти информацию о продукте."

	textWorkoutUsage   = "Пожалуйста, укажите тип тренировки и время в минутах. Пример: /log_workout бег 30"
	textWorkoutBadTime = "Пожалуйста, укажите корректное время в минутах."

	textInternal = "Что-то пошло не так. Попробуйте ещё раз."
)
